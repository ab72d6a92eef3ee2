package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

// Secrets carries provider API keys and local paths. Every key is
// optional: a missing key just routes that provider's calls through the
// synthetic fallback.
type Secrets struct {
	FinnhubApiKey      string `json:"finnhub"`
	AlphaVantageApiKey string `json:"alphaVantage"`
	NewsApiKey         string `json:"newsApi"`
	DataDir            string `json:"dataDir"`
}

// LoadSecrets reads the secrets file selected by PAPERTRADE_ENV. An
// absent file is not an error; the service runs keyless in degraded
// mode.
func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if env := os.Getenv("PAPERTRADE_ENV"); env == "dev" {
		secretsFile = "secrets-dev.json"
	} else if env == "test" {
		secretsFile = "secrets-test.json"
	}

	secrets := Secrets{}

	f, err := os.ReadFile(secretsFile)
	if err == nil {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", secretsFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	if secrets.DataDir == "" {
		secrets.DataDir = os.Getenv("PAPERTRADE_DATA_DIR")
	}
	if secrets.DataDir == "" {
		secrets.DataDir = "data"
	}

	return &secrets, nil
}

// Pprint dumps a value as indented JSON, for scripts and debugging.
func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}
