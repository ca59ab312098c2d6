// Command gotoothd runs a host-side HCI driver against a local
// Bluetooth controller: it resets the controller, starts extended
// scanning, records the RSSI of every advertising report in InfluxDB,
// and stores the local name of each newly observed advertiser in Redis
// (the name seen at first sighting; later reports do not update it).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/redis/go-redis/v9"

	"github.com/aghman/blehci/addr"
	"github.com/aghman/blehci/advdata"
	"github.com/aghman/blehci/bitfield"
	"github.com/aghman/blehci/hci"
	"github.com/aghman/blehci/transport"
)

func main() {
	cfg, err := ParseConfig(os.Args[1:])
	must("parse flags", err)

	logger := newLogger(cfg.LogLevel)
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	influxDB := influxdb2.NewClient(cfg.InfluxURL, cfg.InfluxToken)
	defer influxDB.Close()
	radioAPI := influxDB.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket)

	hostname, err := os.Hostname()
	must("get hostname", err)

	tr, err := transport.OpenSerial(cfg.Device, cfg.Baud)
	must("open serial transport", err)
	defer tr.Close()

	engine := hci.NewEngine(tr, hci.Config{CmdTimeout: cfg.CmdTimeout, Logger: slog.New(logger)})
	tr.SetEventHandler(engine.HandleEvent)

	must("reset controller", resetController(engine))
	must("enable LE meta events", enableLEEvents(engine))
	must("start extended scan", startScan(engine, cfg))

	logger.Info("scanning started", "device", cfg.Device)

	d := &discoveryLoop{
		engine:   engine,
		rdb:      rdb,
		radioAPI: radioAPI,
		ctx:      ctx,
		hostname: hostname,
		logger:   logger,
	}
	d.run()
}

func newLogger(level string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	switch level {
	case "debug":
		l.SetLevel(log.DebugLevel)
	case "warn":
		l.SetLevel(log.WarnLevel)
	case "error":
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
	return l
}

func resetController(engine *hci.Engine) error {
	_, err := engine.Execute(hci.PackOpcode(hci.OgfHostCtl, hci.OcfReset), hci.EncodeReset())
	return err
}

// LE Meta subevent bits this daemon cares about, per the Core
// Specification's LE event mask: Connection Complete, Advertising
// Report, and Extended Advertising Report.
const (
	leEventConnComplete      = 0
	leEventAdvertisingReport = 1
	leEventExtAdvReport      = 12
)

func enableLEEvents(engine *hci.Engine) error {
	mask := bitfield.Set(leEventConnComplete, leEventAdvertisingReport, leEventExtAdvReport)
	_, err := engine.Execute(hci.PackOpcode(hci.OgfLECtl, hci.OcfLESetEventMask), hci.EncodeLESetEventMask(mask))
	return err
}

func startScan(engine *hci.Engine, cfg Config) error {
	params := hci.ExtScanParams{
		OwnAddrType:  0,
		FilterPolicy: 0,
		LE1M: &hci.ScanPhyParams{
			ScanType:   1, // active scanning
			IntervalMs: cfg.ScanIntervalMs,
			WindowMs:   cfg.ScanWindowMs,
		},
	}
	body, err := params.Encode()
	if err != nil {
		return fmt.Errorf("encode scan parameters: %w", err)
	}
	if _, err := engine.Execute(hci.PackOpcode(hci.OgfLECtl, hci.OcfLESetExtScanParameters), body); err != nil {
		return fmt.Errorf("set scan parameters: %w", err)
	}

	enableBody := hci.EncodeLESetExtScanEnable(true, true, cfg.ScanDurationMs, 0)
	if _, err := engine.Execute(hci.PackOpcode(hci.OgfLECtl, hci.OcfLESetExtScanEnable), enableBody); err != nil {
		return fmt.Errorf("enable scan: %w", err)
	}
	return nil
}

// discoveryLoop consumes the engine's event stream, decoding extended
// advertising reports and recording newly observed devices.
type discoveryLoop struct {
	engine   *hci.Engine
	rdb      *redis.Client
	radioAPI api.WriteAPIBlocking
	ctx      context.Context
	hostname string
	logger   *log.Logger
}

func (d *discoveryLoop) run() {
	for ev := range d.engine.Events() {
		if ev.Code != hci.EvtLEMetaEvent || len(ev.Params) == 0 {
			continue
		}
		if ev.Params[0] != hci.LEMetaExtendedAdvertisingReport {
			continue
		}

		reports, err := hci.DecodeExtendedAdvertisingReports(ev.Params[1:])
		if err != nil {
			d.logger.Warn("dropping malformed advertising report", "err", err)
			continue
		}

		for _, r := range reports {
			d.handleReport(r)
		}
	}
}

func (d *discoveryLoop) handleReport(r hci.ExtendedAdvertisingReport) {
	a := addr.FromBytes(r.Addr)
	ad := advdata.Parse(r.Data)

	deviceKey := fmt.Sprintf("gotooth:%s", a.String())
	_, err := d.rdb.Get(d.ctx, deviceKey).Result()
	known := err == nil
	if err != nil && err != redis.Nil {
		d.logger.Error("redis lookup failed", "err", err)
		return
	}

	point := influxdb2.NewPoint("device",
		map[string]string{"address": a.String(), "host": d.hostname},
		map[string]interface{}{"rssi": r.RSSI},
		time.Now())
	if err := d.radioAPI.WritePoint(d.ctx, point); err != nil {
		d.logger.Error("influx write failed", "err", err)
	}

	if known {
		d.logger.Debug("known device", "address", a.String(), "rssi", r.RSSI, "name", ad.LocalName)
		return
	}

	d.logger.Info("discovered device", "address", a.String(), "rssi", r.RSSI, "name", ad.LocalName)
	if err := d.rdb.Set(d.ctx, deviceKey, ad.LocalName, 0).Err(); err != nil {
		d.logger.Error("redis set failed", "err", err)
	}
}

func must(action string, err error) {
	if err != nil {
		panic("gotoothd: failed to " + action + ": " + err.Error())
	}
}
