package config

import (
	"io"
	"reflect"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// WriteTOML encodes the given config into TOML and writes it to the given io.Writer.
// It uses mapstructure tags to determine the TOML keys.
func WriteTOML(w io.Writer, cfg interface{}) error {
	mapped, err := structToMap(cfg)
	if err != nil {
		return err
	}

	return toml.NewEncoder(w).Encode(mapped)
}

// SetDefaults registers every key of cfg as a viper default, so all of them can be overridden by environment variables
func SetDefaults(v *viper.Viper, cfg VoterConfig) error {
	mapped, err := structToMap(cfg)
	if err != nil {
		return err
	}

	setDefaults(v, "", mapped)
	return nil
}

func setDefaults(v *viper.Viper, prefix string, mapped map[string]interface{}) {
	for k, val := range mapped {
		key := prefix + k
		if nested, ok := val.(map[string]interface{}); ok {
			setDefaults(v, key+".", nested)
			continue
		}

		v.SetDefault(key, val)
	}
}

// structToMap converts a struct to a map using mapstructure tags for keys.
// Unlike mapstructure.Decode, this recursively converts nested structs and slices.
func structToMap(cfg interface{}) (map[string]interface{}, error) {
	mapped := make(map[string]interface{})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &mapped})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}

	for k, v := range mapped {
		converted, err := convertValue(v)
		if err != nil {
			return nil, err
		}
		mapped[k] = converted
	}

	return mapped, nil
}

// convertValue recursively converts structs and slices to maps/slices of maps.
// Durations, addresses and wallet kinds are converted to the strings the decode hooks accept.
func convertValue(v interface{}) (interface{}, error) {
	switch d := v.(type) {
	case time.Duration:
		return d.String(), nil
	case common.Address:
		if d == (common.Address{}) {
			return "", nil
		}
		return d.Hex(), nil
	case WalletKind:
		return d.String(), nil
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Struct:
		return structToMap(v)
	case reflect.Slice:
		result := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			converted, err := convertValue(val.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			result[i] = converted
		}
		return result, nil
	case reflect.Map:
		result := make(map[string]interface{})
		for iter := val.MapRange(); iter.Next(); {
			converted, err := convertValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			result[iter.Key().String()] = converted
		}
		return result, nil
	default:
		return v, nil
	}
}
