package main

type Config struct {
	AccountID string `env:"IMPORT_ACCOUNT_ID,required"`
	StartDate string `env:"IMPORT_START"`
	EndDate   string `env:"IMPORT_END"`
}
