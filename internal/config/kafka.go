package config

type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES,required" envSeparator:","`

	// Group is the consumer group for the product event consumer.
	Group string `env:"KAFKA_GROUP" envDefault:"shopbill"`
}
