package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "GREENBITES"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	EnvAppEnv     = "GREENBITES_APP_ENV"
	EnvPort       = "GREENBITES_APP_PORT"
	EnvDBDriver   = "GREENBITES_DB_DRIVER"
	EnvDBDSN      = "GREENBITES_DB_DSN"
	EnvJWTSecret  = "GREENBITES_JWT_SECRET"
	EnvJWTIssuer  = "GREENBITES_JWT_ISSUER"
	EnvJWTExpMins = "GREENBITES_JWT_EXPIRATION_MINUTES"
	EnvLoginDelay = "GREENBITES_LOGIN_DELAY"
)
