package dpp

import (
	"encoding/hex"
	"encoding/json"
	"unicode/utf8"

	"github.com/go-dpp/dpp/dpperr"
)

// Configuration is a decoded DPP configuration object: the credential and
// network parameters a Configurator sends an Enrollee, per Easy Connect
// §4.5. Only the "infra" wi-fi_tech / psk-or-sae variant is supported,
// matching the reference implementation's own stated scope.
type Configuration struct {
	SSID         string
	AKM          AKM
	Passphrase   string // mutually exclusive with PSK
	PSK          string // 64 hex characters, mutually exclusive with Passphrase
	SendHostname bool
	Hidden       bool
}

type configJSON struct {
	WiFiTech  string        `json:"wi-fi_tech"`
	Discovery discoveryJSON `json:"discovery"`
	Cred      credJSON      `json:"cred"`
	Extra     *extraJSON    `json:"dppConfig,omitempty"`
}

type discoveryJSON struct {
	SSID string `json:"ssid"`
}

type credJSON struct {
	AKM  string `json:"akm"`
	Pass string `json:"pass,omitempty"`
	PSK  string `json:"psk,omitempty"`
}

type extraJSON struct {
	SendHostname *bool `json:"send_hostname,omitempty"`
	Hidden       *bool `json:"hidden,omitempty"`
}

// ParseConfigurationObject decodes a DPP configuration object. It enforces
// the same shape the reference implementation does: wi-fi_tech must be
// "infra", the SSID must be valid UTF-8, the akm string must resolve to at
// least one recognized suite, and exactly one of a passphrase or a 64-hex-
// character PSK must be present.
func ParseConfigurationObject(data []byte) (*Configuration, error) {
	var raw configJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, dpperr.Malformed("dpp.ParseConfigurationObject: invalid JSON", err)
	}

	if raw.WiFiTech != "infra" {
		return nil, dpperr.Unsupported("dpp.ParseConfigurationObject: unsupported wi-fi_tech", nil)
	}
	if raw.Discovery.SSID == "" || !utf8.ValidString(raw.Discovery.SSID) {
		return nil, dpperr.Malformed("dpp.ParseConfigurationObject: invalid ssid", nil)
	}

	akm, ok := ParseAKM(raw.Cred.AKM)
	if !ok {
		return nil, dpperr.Unsupported("dpp.ParseConfigurationObject: unrecognized akm", nil)
	}

	hasPass := raw.Cred.Pass != ""
	_, pskHexErr := hex.DecodeString(raw.Cred.PSK)
	hasPSK := len(raw.Cred.PSK) == 64 && pskHexErr == nil
	if hasPass == hasPSK {
		return nil, dpperr.Malformed("dpp.ParseConfigurationObject: exactly one of pass/psk must be present", nil)
	}

	config := &Configuration{
		SSID: raw.Discovery.SSID,
		AKM:  akm,
	}
	if hasPass {
		config.Passphrase = raw.Cred.Pass
	} else {
		config.PSK = raw.Cred.PSK
	}

	if raw.Extra != nil {
		if raw.Extra.SendHostname != nil {
			config.SendHostname = *raw.Extra.SendHostname
		}
		if raw.Extra.Hidden != nil {
			config.Hidden = *raw.Extra.Hidden
		}
	}

	return config, nil
}

// ToJSON encodes c as a DPP configuration object.
func (c *Configuration) ToJSON() ([]byte, error) {
	sendHostname := c.SendHostname
	hidden := c.Hidden

	raw := configJSON{
		WiFiTech: "infra",
		Discovery: discoveryJSON{
			SSID: c.SSID,
		},
		Cred: credJSON{
			AKM:  c.AKM.String(),
			Pass: c.Passphrase,
			PSK:  c.PSK,
		},
		Extra: &extraJSON{
			SendHostname: &sendHostname,
			Hidden:       &hidden,
		},
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, dpperr.Malformed("dpp.Configuration.ToJSON", err)
	}
	return data, nil
}
