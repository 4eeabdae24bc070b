package main

//go-build: CGO_ENABLED=0

// sigmon watches a rig publishing its self-test report over MQTT.

import (
	"bytes"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/hwsign/selftest/pkg/platform"
	"github.com/hwsign/selftest/pkg/serial/mqttport"
)

var (
	brokerURL   = "mqtt://localhost:1883/selftest"
	reportTopic = "report"
	inputTopic  = "input"
	history     = 64
)

func init() {
	flag.StringVar(&brokerURL, "broker", brokerURL, "MQTT broker URL, e.g. mqtt://host:port/topic-prefix.")
	flag.StringVar(&reportTopic, "report-topic", reportTopic, "Topic the rig publishes its report to.")
	flag.StringVar(&inputTopic, "input-topic", inputTopic, "Topic the rig reads input from.")
	flag.IntVar(&history, "history", history, "Report lines kept for the recent command.")
}

// monitor keeps the most recent report lines. All transport access goes
// through trMu: the transport expects a single mutator at a time.
type monitor struct {
	tr   *mqttport.Transport
	trMu sync.Mutex

	mu    sync.Mutex
	buf   []byte
	lines []string
	seen  int
}

func (m *monitor) pump() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	chunk := make([]byte, 512)
	for range ticker.C {
		m.trMu.Lock()
		m.tr.Poll()
		n, err := m.tr.Read(chunk)
		m.trMu.Unlock()
		if err != nil || n == 0 {
			continue
		}
		m.feed(chunk[:n])
	}
}

func (m *monitor) send(text string) {
	m.trMu.Lock()
	m.tr.Write([]byte(text + "\r\n"))
	m.trMu.Unlock()
}

func (m *monitor) feed(b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf = append(m.buf, b...)
	for {
		i := bytes.Index(m.buf, []byte("\r\n"))
		if i < 0 {
			break
		}
		m.lines = append(m.lines, string(m.buf[:i]))
		m.buf = m.buf[i+2:]
		m.seen++
		if len(m.lines) > history {
			m.lines = m.lines[1:]
		}
	}
}

func (m *monitor) recent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

func (m *monitor) total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seen
}

func main() {
	flag.Parse()

	tr, err := mqttport.Dial(brokerURL, "sigmon-"+platform.DeviceID(), inputTopic, reportTopic)
	if err != nil {
		glog.Exitf("connect %s: %v", brokerURL, err)
	}
	defer tr.Close()

	mon := &monitor{tr: tr}
	go mon.pump()

	shell := ishell.New()
	shell.Println("sigmon - self-test report monitor")
	shell.SetPrompt(fmt.Sprintf("[%s] > ", reportTopic))

	shell.AddCmd(&ishell.Cmd{
		Name: "recent",
		Help: "print buffered report lines",
		Func: func(c *ishell.Context) {
			for _, line := range mon.recent() {
				c.Println(line)
			}
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "watch",
		Help: "watch <seconds>: stream report lines as they arrive",
		Func: func(c *ishell.Context) {
			secs := 5
			if len(c.Args) > 0 {
				if v, err := strconv.Atoi(c.Args[0]); err == nil {
					secs = v
				}
			}
			deadline := time.Now().Add(time.Duration(secs) * time.Second)
			last := mon.total()
			for time.Now().Before(deadline) {
				time.Sleep(200 * time.Millisecond)
				lines := mon.recent()
				total := mon.total()
				if fresh := total - last; fresh > 0 && fresh <= len(lines) {
					for _, line := range lines[len(lines)-fresh:] {
						c.Println(line)
					}
				}
				last = total
			}
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "send",
		Help: "send <text>: send a line to the rig (echoed back by its poll routine)",
		Func: func(c *ishell.Context) {
			mon.send(strings.Join(c.Args, " "))
		},
	})

	shell.Run()
}
