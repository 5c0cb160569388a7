package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type, so operators can write "1h" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		PrivateKeyLocation string   `json:"private_key"`
		PublicKeyLocation  string   `json:"public_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		UserTimestamps  bool `json:"user_timestamps"`
		VaultTimestamps bool `json:"vault_timestamps"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		CORSOrigin      string   `json:"cors_origin"`
		CORSCredentials bool     `json:"cors_credentials"`
	} `json:"server,omitempty"`

	Cookie struct {
		Name     string `json:"name"`
		Domain   string `json:"domain"`
		Secure   bool   `json:"secure"`
		HTTPOnly bool   `json:"httponly"`
		SameSite string `json:"samesite"`
	} `json:"cookie,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PrivateKeyLocation: jsonCfg.App.PrivateKeyLocation,
			PublicKeyLocation:  jsonCfg.App.PublicKeyLocation,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			UserTimestamps:  jsonCfg.Storage.UserTimestamps,
			VaultTimestamps: jsonCfg.Storage.VaultTimestamps,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigin:      jsonCfg.Server.CORSOrigin,
			CORSCredentials: jsonCfg.Server.CORSCredentials,
		},
		Cookie: Cookie{
			Name:     jsonCfg.Cookie.Name,
			Domain:   jsonCfg.Cookie.Domain,
			Secure:   jsonCfg.Cookie.Secure,
			HTTPOnly: jsonCfg.Cookie.HTTPOnly,
			SameSite: jsonCfg.Cookie.SameSite,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
