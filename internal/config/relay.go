package config

import "time"

// Relay controls how often the outbox poller runs and how many rows it
// claims per pass.
type Relay struct {
	BatchSize uint32        `env:"RELAY_BATCH_SIZE" envDefault:"100"`
	Interval  time.Duration `env:"RELAY_INTERVAL" envDefault:"1s"`
}
