package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Twitter  TwitterConfig  `mapstructure:"twitter"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Elastic  ElasticConfig  `mapstructure:"elastic"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 日志远程上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// TwitterConfig 推特抓取网关配置
type TwitterConfig struct {
	APIBaseURL    string `mapstructure:"api_base_url"`
	MirrorBaseURL string `mapstructure:"mirror_base_url"`
	Timeout       int    `mapstructure:"timeout"`
	UserAgent     string `mapstructure:"user_agent"`
}

// WebhookConfig Discord通知配置
type WebhookConfig struct {
	URL       string `mapstructure:"url"`
	Username  string `mapstructure:"username"`
	AvatarURL string `mapstructure:"avatar_url"`
}

type KafkaConfig struct {
	Brokers []string   `mapstructure:"brokers"`
	Sasl    SaslConfig `mapstructure:"sasl"`
	Topic   string     `mapstructure:"topic"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Enable    bool   `mapstructure:"enable"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

// ElasticIndices Elastic索引
type ElasticIndices struct {
	ArtistIndex string `mapstructure:"artist_index"`
}

type LLMConfig struct {
	Enable bool   `mapstructure:"enable"`
	URL    string `mapstructure:"url"`
	Model  string `mapstructure:"model"`
	ApiKey string `mapstructure:"api_key"`
}

// JobsConfig 定时任务配置
type JobsConfig struct {
	Refresh JobConfig `mapstructure:"refresh"`
	Promote JobConfig `mapstructure:"promote"`
}

type JobConfig struct {
	IntervalHours int  `mapstructure:"interval_hours"`
	RunOnStart    bool `mapstructure:"run_on_start"`
}
