package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
)

// The starter records mirror what a freshly onboarded dashboard shows. All
// timestamps are derived from the provided clock so tests stay deterministic.

func strPtr(s string) *string { return &s }

// DefaultDonations returns the starter donation listings for a donor account.
func DefaultDonations(userID uuid.UUID, now time.Time) []models.Donation {
	day := 24 * time.Hour
	return []models.Donation{
		{
			ID:          uuid.New(),
			UserID:      userID,
			FoodType:    "Fresh Vegetables (Carrots, Tomatoes, Lettuce)",
			Quantity:    decimal.NewFromInt(15),
			Unit:        enums.UnitKilogram,
			ExpiryDate:  now.Add(3 * day),
			Location:    "Downtown Farmers Market, 123 Main St",
			Description: strPtr("Organic vegetables, slightly imperfect but perfectly edible. Great for soup kitchens."),
			Status:      enums.DonationStatusAvailable,
			DonorName:   "Food Donor",
			CreatedAt:   now.Add(-2 * day),
		},
		{
			ID:          uuid.New(),
			UserID:      userID,
			FoodType:    "Bread & Bakery Items",
			Quantity:    decimal.NewFromInt(8),
			Unit:        enums.UnitKilogram,
			ExpiryDate:  now.Add(5 * day),
			Location:    "City Bakery, 456 Oak Avenue",
			Description: strPtr("Fresh bread, rolls, and pastries from today's batch. Best consumed within 2-3 days."),
			Status:      enums.DonationStatusAvailable,
			DonorName:   "Food Donor",
			CreatedAt:   now.Add(-2*day + time.Second),
		},
		{
			ID:          uuid.New(),
			UserID:      userID,
			FoodType:    "Canned Goods & Non-Perishables",
			Quantity:    decimal.NewFromInt(25),
			Unit:        enums.UnitKilogram,
			ExpiryDate:  now.Add(10 * day),
			Location:    "Warehouse District, 789 Industrial Blvd",
			Description: strPtr("Assorted canned vegetables, beans, and soups. Long shelf life."),
			Status:      enums.DonationStatusAvailable,
			DonorName:   "Food Donor",
			CreatedAt:   now.Add(-5 * day),
		},
		{
			ID:          uuid.New(),
			UserID:      userID,
			FoodType:    "Rice & Grains",
			Quantity:    decimal.NewFromInt(30),
			Unit:        enums.UnitKilogram,
			ExpiryDate:  now.Add(7 * day),
			Location:    "Wholesale Store, 321 Commerce St",
			Description: strPtr("Bulk rice, lentils, and quinoa. Perfect for large-scale meal preparation."),
			Status:      enums.DonationStatusAvailable,
			DonorName:   "Food Donor",
			CreatedAt:   now.Add(-5*day + time.Second),
		},
		{
			ID:          uuid.New(),
			UserID:      userID,
			FoodType:    "Dairy Products (Milk, Cheese, Yogurt)",
			Quantity:    decimal.NewFromInt(12),
			Unit:        enums.UnitKilogram,
			ExpiryDate:  now.Add(3 * day),
			Location:    "Local Dairy Farm, 555 Country Road",
			Description: strPtr("Fresh dairy products. Must be refrigerated immediately."),
			Status:      enums.DonationStatusAvailable,
			DonorName:   "Food Donor",
			CreatedAt:   now.Add(-1 * day),
		},
	}
}

// DefaultRequests returns the starter request history for a seeker account.
func DefaultRequests(userID uuid.UUID, now time.Time) []models.Request {
	day := 24 * time.Hour
	return []models.Request{
		{
			ID:         uuid.New(),
			UserID:     userID,
			FoodType:   "Fresh Fruits & Vegetables",
			Quantity:   decimal.NewFromInt(20),
			Unit:       enums.UnitKilogram,
			Urgency:    enums.UrgencyHigh,
			Location:   "Community Center, 100 Hope Street",
			Purpose:    "Distribution to homeless shelter residents. Feeding 50+ people daily.",
			Status:     enums.RequestStatusCompleted,
			SeekerName: "Food Seeker",
			CreatedAt:  now.Add(-7 * day),
		},
		{
			ID:         uuid.New(),
			UserID:     userID,
			FoodType:   "Packaged Meals",
			Quantity:   decimal.NewFromInt(15),
			Unit:       enums.UnitKilogram,
			Urgency:    enums.UrgencyMedium,
			Location:   "Food Bank, 200 Charity Lane",
			Purpose:    "Weekly food distribution program for low-income families.",
			Status:     enums.RequestStatusCompleted,
			SeekerName: "Food Seeker",
			CreatedAt:  now.Add(-5 * day),
		},
		{
			ID:         uuid.New(),
			UserID:     userID,
			FoodType:   "Canned Goods",
			Quantity:   decimal.NewFromInt(30),
			Unit:       enums.UnitKilogram,
			Urgency:    enums.UrgencyLow,
			Location:   "Community Kitchen, 300 Service Road",
			Purpose:    "Stock for community kitchen serving daily meals to seniors.",
			Status:     enums.RequestStatusCompleted,
			SeekerName: "Food Seeker",
			CreatedAt:  now.Add(-3 * day),
		},
		{
			ID:         uuid.New(),
			UserID:     userID,
			FoodType:   "Bread & Bakery",
			Quantity:   decimal.NewFromInt(10),
			Unit:       enums.UnitKilogram,
			Urgency:    enums.UrgencyHigh,
			Location:   "Youth Center, 400 Kids Avenue",
			Purpose:    "After-school snack program for underprivileged children.",
			Status:     enums.RequestStatusApproved,
			SeekerName: "Food Seeker",
			CreatedAt:  now.Add(-1 * day),
		},
	}
}

// DefaultNotifications returns the starter notification feed for the role.
func DefaultNotifications(userID uuid.UUID, role enums.UserRole, now time.Time) []models.Notification {
	if role == enums.UserRoleSeeker {
		return seekerNotifications(userID, now)
	}
	return donorNotifications(userID, now)
}

func donorNotifications(userID uuid.UUID, now time.Time) []models.Notification {
	readAt := now.Add(-1 * time.Hour)
	return []models.Notification{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeSuccess,
			Title:     "Donation Claimed!",
			Message:   "Your Fresh Vegetables donation has been claimed by Hope Community Center.",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeInfo,
			Title:     "Impact Update",
			Message:   "Your donations have helped feed 120 people this month!",
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeMessage,
			Title:     "Thank You Message",
			Message:   "City Food Bank sent you a thank you note for your generous donation.",
			ReadAt:    &readAt,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeWarning,
			Title:     "Expiring Soon",
			Message:   "Your Dairy Products donation expires in 2 days. Consider updating the listing.",
			ReadAt:    &readAt,
			CreatedAt: now.Add(-36 * time.Hour),
		},
	}
}

func seekerNotifications(userID uuid.UUID, now time.Time) []models.Notification {
	readAt := now.Add(-1 * time.Hour)
	return []models.Notification{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeSuccess,
			Title:     "Request Approved!",
			Message:   "Your request for Bread & Bakery has been approved. Pickup details sent.",
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeInfo,
			Title:     "New Donations Available",
			Message:   "3 new food donations matching your needs are now available.",
			CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeMessage,
			Title:     "Donor Message",
			Message:   "Green Grocery Store wants to coordinate pickup time with you.",
			ReadAt:    &readAt,
			CreatedAt: now.Add(-12 * time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeSuccess,
			Title:     "Impact Report",
			Message:   "You've helped distribute food to 200+ people this month!",
			ReadAt:    &readAt,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}

// DefaultMessages returns the starter inbox for the role.
func DefaultMessages(userID uuid.UUID, role enums.UserRole, now time.Time) []models.Message {
	if role == enums.UserRoleSeeker {
		return seekerMessages(userID, now)
	}
	return donorMessages(userID, now)
}

func donorMessages(userID uuid.UUID, now time.Time) []models.Message {
	readAt := now.Add(-1 * time.Hour)
	return []models.Message{
		{
			ID:      uuid.New(),
			UserID:  userID,
			Sender:  "Hope Community Center",
			Subject: "Thank you for your donation!",
			Preview: "We received your vegetables donation and distributed it to 40 families...",
			Body: "Dear Donor,\n\n" +
				"We wanted to express our heartfelt gratitude for your generous donation of fresh vegetables. Your contribution has made a significant impact on our community.\n\n" +
				"The 15kg of vegetables you donated were distributed to 40 families in need, providing them with nutritious meals for several days. Many of these families struggle with food insecurity, and your donation has brought them much-needed relief.\n\n" +
				"We would love to partner with you for future donations. Please let us know if you have any questions or would like to schedule regular pickups.\n\n" +
				"Thank you again for your kindness and generosity!\n\n" +
				"Best regards,\nHope Community Center Team",
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID:      uuid.New(),
			UserID:  userID,
			Sender:  "Admin",
			Subject: "Your Impact Report - October 2025",
			Preview: "Here's a summary of your contributions this month...",
			Body: "Hello Food Donor,\n\n" +
				"Thank you for being an active member of our Food Waste Reduction Platform!\n\n" +
				"Here's your impact summary for October 2025:\n" +
				"- Total Donations: 5\n" +
				"- Total Weight: 90 kg\n" +
				"- People Helped: 360\n" +
				"- CO₂ Saved: 225 kg\n\n" +
				"Your contributions are making a real difference in fighting food waste and hunger. Keep up the amazing work!\n\n" +
				"If you have any questions or suggestions, please don't hesitate to reach out.\n\n" +
				"Best regards,\nPlatform Admin Team",
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:      uuid.New(),
			UserID:  userID,
			Sender:  "System",
			Subject: "Donation Pickup Scheduled",
			Preview: "Your bread donation pickup has been scheduled for tomorrow...",
			Body: "Hi there,\n\n" +
				"This is a confirmation that your donation pickup has been scheduled:\n\n" +
				"Donation: Bread & Bakery Items\n" +
				"Quantity: 8 kg\n" +
				"Pickup Time: Tomorrow, 10:00 AM\n" +
				"Pickup Location: City Bakery, 456 Oak Avenue\n\n" +
				"The recipient organization will arrive at the scheduled time. Please ensure the items are ready for pickup.\n\n" +
				"Thank you for your contribution!\n\n" +
				"Best,\nFood Waste Platform",
			ReadAt:    &readAt,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}

func seekerMessages(userID uuid.UUID, now time.Time) []models.Message {
	readAt := now.Add(-1 * time.Hour)
	return []models.Message{
		{
			ID:      uuid.New(),
			UserID:  userID,
			Sender:  "Green Grocery Store",
			Subject: "Donation Available - Pickup Coordination",
			Preview: "We have fresh produce available. Can we coordinate pickup time?...",
			Body: "Hello,\n\n" +
				"We have 20kg of fresh vegetables available for donation. The items include:\n" +
				"- Carrots: 8kg\n" +
				"- Tomatoes: 7kg\n" +
				"- Lettuce: 5kg\n\n" +
				"These are slightly imperfect but perfectly edible and nutritious. They need to be picked up within the next 2 days.\n\n" +
				"Could you please confirm your availability for pickup? We're open Monday-Friday, 9 AM - 6 PM, and Saturday 9 AM - 2 PM.\n\n" +
				"Looking forward to working with you!\n\n" +
				"Best regards,\nGreen Grocery Store",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:      uuid.New(),
			UserID:  userID,
			Sender:  "Admin",
			Subject: "Your Request Has Been Approved",
			Preview: "Good news! Your food request for Bread & Bakery has been approved...",
			Body: "Dear Food Seeker,\n\n" +
				"Great news! Your request for Bread & Bakery items has been approved.\n\n" +
				"Request Details:\n" +
				"- Food Type: Bread & Bakery\n" +
				"- Quantity: 10 kg\n" +
				"- Purpose: After-school snack program\n\n" +
				"Donor Information:\n" +
				"- Name: City Bakery\n" +
				"- Location: 456 Oak Avenue\n" +
				"- Contact: Available in your dashboard\n\n" +
				"Please coordinate with the donor for pickup arrangements. Make sure to bring appropriate containers and transportation.\n\n" +
				"Thank you for using our platform to help those in need!\n\n" +
				"Best regards,\nPlatform Admin",
			CreatedAt: now.Add(-6 * time.Hour),
		},
		{
			ID:      uuid.New(),
			UserID:  userID,
			Sender:  "Support",
			Subject: "Tips for Effective Food Distribution",
			Preview: "Here are some best practices for managing food donations...",
			Body: "Hello,\n\n" +
				"We wanted to share some tips to help you maximize the impact of your food distribution efforts:\n\n" +
				"1. Food Safety First\n" +
				"   - Always check expiry dates\n" +
				"   - Maintain proper storage temperatures\n" +
				"   - Use clean containers for transport\n\n" +
				"2. Efficient Distribution\n" +
				"   - Plan routes to minimize travel time\n" +
				"   - Coordinate with multiple donors for bulk pickups\n" +
				"   - Keep accurate records of distributions\n\n" +
				"3. Community Engagement\n" +
				"   - Share impact stories with donors\n" +
				"   - Provide feedback on food quality\n" +
				"   - Build long-term relationships\n\n" +
				"4. Documentation\n" +
				"   - Take photos of distributions\n" +
				"   - Track number of people served\n" +
				"   - Report any issues promptly\n\n" +
				"If you need any assistance or have questions, our support team is here to help!\n\n" +
				"Best regards,\nSupport Team",
			ReadAt:    &readAt,
			CreatedAt: now.Add(-72 * time.Hour),
		},
	}
}
