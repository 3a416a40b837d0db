/*
Package config loads gateway configuration from environment variables,
an optional config file and bound flags via viper (flags take precedence
over the environment, and the environment over the file), matching the table of
inputs the gateway accepts: gRPC listen port, bus transport and
identity, and the folder Raft state is persisted under. Every value has
a default, so a gateway started with no configuration at all still
comes up, just without a bus connection until Configure supplies a URL.
*/
package config

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	GRPCPort int

	BusURL    string
	Namespace string

	IdentityID   string
	IdentityName string

	Username string
	Password string

	TLSCert          string
	TLSKey           string
	VerifyServerCert bool

	FailFastIfOffline bool

	ConsensusDataDir string
}

const (
	keyGRPCPort          = "grpc_port"
	keyBusURL            = "bus_url"
	keyNamespace         = "namespace"
	keyIdentityID        = "identity_id"
	keyIdentityName      = "identity_name"
	keyUsername          = "username"
	keyPassword          = "password"
	keyTLSCert           = "tls_cert"
	keyTLSKey            = "tls_key"
	keyVerifyServerCert  = "verify_server_cert"
	keyFailFastIfOffline = "fail_fast_if_offline"
	keyConsensusDataDir  = "consensus_data_dir"
)

// Load reads configuration from the environment (prefixed TNC_), an
// optional config file, and any flags already parsed onto fs. Unset
// values fall back to the documented defaults.
func Load(fs *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("tnc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyGRPCPort, 50060)
	v.SetDefault(keyBusURL, "")
	v.SetDefault(keyNamespace, "tnc")
	v.SetDefault(keyIdentityName, "FlowPro Agent")
	v.SetDefault(keyIdentityID, uuid.NewString())
	v.SetDefault(keyUsername, "")
	v.SetDefault(keyPassword, "")
	v.SetDefault(keyTLSCert, "")
	v.SetDefault(keyTLSKey, "")
	v.SetDefault(keyVerifyServerCert, true)
	v.SetDefault(keyFailFastIfOffline, true)
	v.SetDefault(keyConsensusDataDir, ".")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
	}

	return &Config{
		GRPCPort:          v.GetInt(keyGRPCPort),
		BusURL:            v.GetString(keyBusURL),
		Namespace:         v.GetString(keyNamespace),
		IdentityID:        v.GetString(keyIdentityID),
		IdentityName:      v.GetString(keyIdentityName),
		Username:          v.GetString(keyUsername),
		Password:          v.GetString(keyPassword),
		TLSCert:           v.GetString(keyTLSCert),
		TLSKey:            v.GetString(keyTLSKey),
		VerifyServerCert:  v.GetBool(keyVerifyServerCert),
		FailFastIfOffline: v.GetBool(keyFailFastIfOffline),
		ConsensusDataDir:  v.GetString(keyConsensusDataDir),
	}, nil
}
