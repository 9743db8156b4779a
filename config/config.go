package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	db "eventsync/debug"
)

const (
	EVSYNCCONFIG = "EVSYNCCONFIG"
)

var Target = "local"

// Local params
var local = `
event:
  max_events: 256

retry:
  max_retry: 20
  interval: 10ms

evtest:
  events: 3
  waiters: 4
  max_delay: 3s
`

type Config struct {
	Event struct {
		// Number of slots in the event table.
		MAX_EVENTS int `yaml:"max_events"`
	} `yaml:"event"`
	Retry struct {
		// Attempts before a retried operation gives up.
		MAX_RETRY int `yaml:"max_retry"`
		// Pause between attempts.
		INTERVAL time.Duration `yaml:"interval"`
	} `yaml:"retry"`
	EvTest struct {
		EVENTS    int           `yaml:"events"`
		WAITERS   int           `yaml:"waiters"`
		MAX_DELAY time.Duration `yaml:"max_delay"`
	} `yaml:"evtest"`
}

var Conf *Config

func init() {
	switch Target {
	case "local":
		Conf = ReadConfig(local)
	default:
		db.DFatalf("Built for unknown target %s", Target)
	}
	if pn := os.Getenv(EVSYNCCONFIG); pn != "" {
		b, err := os.ReadFile(pn)
		if err != nil {
			db.DFatalf("Error ReadFile %v: %v", pn, err)
		}
		if err := Conf.Override(string(b)); err != nil {
			db.DFatalf("Error config %v: %v", pn, err)
		}
	}
}

func ParseConfig(params string) (*Config, error) {
	config := &Config{}
	d := yaml.NewDecoder(strings.NewReader(params))
	if err := d.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

func ReadConfig(params string) *Config {
	config, err := ParseConfig(params)
	if err != nil {
		db.DFatalf("Yaml decode %v err %v\n", params, err)
	}
	return config
}

// Override decodes params on top of the current values; keys missing
// from params keep their value.
func (c *Config) Override(params string) error {
	d := yaml.NewDecoder(strings.NewReader(params))
	return d.Decode(c)
}
