// Package platform assembles the rig: interrupt controller, transport,
// shared cell, console and accelerator, in bring-up order.
package platform

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/hwsign/selftest/pkg/accel"
	"github.com/hwsign/selftest/pkg/accel/p256"
	"github.com/hwsign/selftest/pkg/console"
	"github.com/hwsign/selftest/pkg/harness"
	"github.com/hwsign/selftest/pkg/irq"
	"github.com/hwsign/selftest/pkg/run"
	"github.com/hwsign/selftest/pkg/serial"
	"github.com/hwsign/selftest/pkg/serial/mqttport"
	"github.com/hwsign/selftest/pkg/serial/wsport"
)

// Config selects the transport backend and the harness timing.
type Config struct {
	Transport string
	BrokerURL string
	PubTopic  string
	SubTopic  string
	WSURL     string
	Origin    string
	Delay     time.Duration
	TickEvery time.Duration

	// Out receives device output on the stdio transport. Defaults to
	// os.Stdout; tests point it elsewhere.
	Out io.Writer
}

var defaultConfig = Config{
	Transport: "stdio",
	BrokerURL: "mqtt://localhost:1883/selftest",
	PubTopic:  "report",
	SubTopic:  "input",
	WSURL:     "ws://localhost:8080/transport",
	Origin:    "http://localhost/",
	Delay:     harness.DefaultDelay,
	TickEvery: 20 * time.Millisecond,
}

func init() {
	if val := os.Getenv("SELFTEST_TRANSPORT"); val != "" {
		defaultConfig.Transport = val
	}
	if val := os.Getenv("SELFTEST_BROKER_URL"); val != "" {
		defaultConfig.BrokerURL = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Transport, "transport", defaultConfig.Transport, "Transport backend: stdio, mqtt or ws.")
	flag.StringVar(&defaultConfig.BrokerURL, "broker", defaultConfig.BrokerURL, "MQTT broker URL, e.g. mqtt://host:port/topic-prefix.")
	flag.StringVar(&defaultConfig.PubTopic, "pub-topic", defaultConfig.PubTopic, "Topic the report is published to.")
	flag.StringVar(&defaultConfig.SubTopic, "sub-topic", defaultConfig.SubTopic, "Topic inbound bytes arrive on.")
	flag.StringVar(&defaultConfig.WSURL, "ws-url", defaultConfig.WSURL, "WebSocket endpoint for the ws transport.")
	flag.DurationVar(&defaultConfig.Delay, "delay", defaultConfig.Delay, "Idle delay between self-test passes.")
	flag.DurationVar(&defaultConfig.TickEvery, "tick", defaultConfig.TickEvery, "Interval of the transport housekeeping trigger.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Platform is the brought-up rig.
type Platform struct {
	Ctrl    *irq.Controller
	Cell    *serial.Cell
	Console *console.Console
	Engine  accel.Engine
	LED     *LED

	pumps []run.Runnable
}

// BringUp constructs everything in dependency order. The cell is bound,
// and the service routine installed, strictly before any trigger pump
// can start: pumps are only handed out for the caller's runner to spawn.
func (c *Config) BringUp() (*Platform, error) {
	p := &Platform{
		Ctrl: irq.NewController(),
		Cell: &serial.Cell{},
		LED:  &LED{},
	}

	switch c.Transport {
	case "stdio":
		out := c.Out
		if out == nil {
			out = os.Stdout
		}
		port := serial.NewPort(out)
		p.Cell.Bind(port, p.Ctrl)
		p.pumps = append(p.pumps,
			run.NamedRun("stdin-pump", stdinPump(port, p.Ctrl)))
	case "mqtt":
		tr, err := mqttport.Dial(c.BrokerURL, "selftest-"+DeviceID(), c.PubTopic, c.SubTopic)
		if err != nil {
			return nil, err
		}
		p.Cell.Bind(tr, p.Ctrl)
	case "ws":
		tr, err := wsport.Dial(c.WSURL, c.Origin)
		if err != nil {
			return nil, err
		}
		p.Cell.Bind(tr, p.Ctrl)
	default:
		return nil, fmt.Errorf("unknown transport %q", c.Transport)
	}
	p.pumps = append(p.pumps,
		run.NamedRun("tick-pump", tickPump(p.Ctrl, c.TickEvery)))

	p.Console = console.New(p.Cell)
	p.Engine = p256.Enable()
	glog.V(1).Infof("platform up: transport=%s", c.Transport)
	return p, nil
}

// MustBringUp is BringUp for mains.
func (c *Config) MustBringUp() *Platform {
	p, err := c.BringUp()
	if err != nil {
		glog.Fatalf("bring-up: %v", err)
	}
	return p
}

// NewHarness assembles the self-test harness on this platform.
func (c *Config) NewHarness(p *Platform) *harness.Harness {
	h := harness.New(p.Engine, p.Console)
	h.Status = p.LED
	h.Delay = c.Delay
	return h
}

// Pumps are the trigger sources feeding the interrupt controller. The
// caller spawns them after bring-up; none may start earlier.
func (p *Platform) Pumps() []run.Runnable {
	return p.pumps
}

// tickPump fires the housekeeping line periodically so the service
// routine keeps the transport polled and drained.
func tickPump(ctrl *irq.Controller, every time.Duration) run.RunFunc {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				ctrl.Trigger(serial.LineReady)
			}
		}
	}
}

// stdinPump stages host input and fires the receive-complete line.
func stdinPump(port *serial.Port, ctrl *irq.Controller) run.RunFunc {
	return func(ctx context.Context) error {
		return run.RunWithContextCancel(ctx, nil, func() error {
			buf := make([]byte, 64)
			for {
				n, err := os.Stdin.Read(buf)
				if n > 0 {
					port.HostWrite(buf[:n])
					ctrl.Trigger(serial.LineRxComplete)
				}
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
			}
		})
	}
}
