package main

import (
	"time"

	"github.com/spf13/pflag"
)

// Config holds every flag gotoothd accepts, parsed once at startup.
type Config struct {
	Device string
	Baud   int

	ScanIntervalMs float64
	ScanWindowMs   float64
	ScanDurationMs float64

	RedisAddr string
	RedisDB   int

	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string

	CmdTimeout time.Duration
	LogLevel   string
}

// ParseConfig builds a Config from args (pass os.Args[1:] in production,
// a fixed slice in tests).
func ParseConfig(args []string) (Config, error) {
	fs := pflag.NewFlagSet("gotoothd", pflag.ContinueOnError)

	cfg := Config{}
	fs.StringVar(&cfg.Device, "device", "/dev/ttyACM0", "HCI UART device path")
	fs.IntVar(&cfg.Baud, "baud", 115200, "HCI UART baud rate")

	fs.Float64Var(&cfg.ScanIntervalMs, "scan-interval-ms", 100, "extended scan interval in milliseconds")
	fs.Float64Var(&cfg.ScanWindowMs, "scan-window-ms", 50, "extended scan window in milliseconds")
	fs.Float64Var(&cfg.ScanDurationMs, "scan-duration-ms", 0, "extended scan duration in milliseconds (0 = until disabled)")

	fs.StringVar(&cfg.RedisAddr, "redis-addr", "localhost:6379", "redis address for known-device dedup cache")
	fs.IntVar(&cfg.RedisDB, "redis-db", 0, "redis database index")

	fs.StringVar(&cfg.InfluxURL, "influx-url", "http://localhost:8086", "InfluxDB base URL")
	fs.StringVar(&cfg.InfluxToken, "influx-token", "", "InfluxDB auth token")
	fs.StringVar(&cfg.InfluxOrg, "influx-org", "gotoothd", "InfluxDB organization")
	fs.StringVar(&cfg.InfluxBucket, "influx-bucket", "gotoothd", "InfluxDB bucket")

	fs.DurationVar(&cfg.CmdTimeout, "cmd-timeout", 2*time.Second, "HCI command completion timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
