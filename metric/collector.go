package main

import (
	"bufio"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// resultRecord mirrors the result lines the benchmark writes to its JSON
// log. Plain log messages in the same file lack the Protocol field and are
// skipped.
type resultRecord struct {
	Timestamp string `json:"Timestamp"`
	Protocol  string `json:"Protocol"`
	Remote    string `json:"Remote"`
	Success   bool   `json:"Success"`
	Details   struct {
		Samples    int     `json:"Samples"`
		Avg        float64 `json:"Avg"`
		Min        float64 `json:"Min"`
		Max        float64 `json:"Max"`
		StdDev     float64 `json:"StdDev"`
		Throughput float64 `json:"Throughput"`
	} `json:"Details"`
}

type collector struct {
	registry *registry
	sampleCh chan resultRecord
}

func newCollector(path string) *collector {
	c := new(collector)
	c.sampleCh = make(chan resultRecord, 1)
	c.registry = newRegistry()
	go c.processSample()
	go c.process(path)
	return c
}

func (c collector) process(path string) {
	first := time.NewTicker(1 * time.Second)
	ticker := time.NewTicker(1 * time.Minute)
	for {
		select {
		// Initial read shortly after startup
		case <-first.C:
			if err := c.processFile(path); err != nil {
				log.Println(err)
			}
			first.Stop()
		// Re-read once a minute
		case <-ticker.C:
			if err := c.processFile(path); err != nil {
				log.Println(err)
			}
		}
	}
}

func (c collector) processFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var record resultRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			continue
		}
		if record.Protocol == "" {
			continue
		}
		c.sampleCh <- record
	}
	return scanner.Err()
}

func (c collector) processSample() {
	for sample := range c.sampleCh {
		labels := prometheus.Labels{
			"protocol": sample.Protocol,
			"remote":   sample.Remote,
			"success":  strconv.FormatBool(sample.Success),
		}
		c.storeSample("sockbench_avg_latency_seconds", sample.Details.Avg/1e9, labels)
		c.storeSample("sockbench_throughput_mb_per_second", sample.Details.Throughput, labels)
		c.storeSample("sockbench_samples", float64(sample.Details.Samples), labels)
	}
}

func (c collector) storeSample(name string, value float64, labels prometheus.Labels) {
	c.registry.mu.Lock()
	defer c.registry.mu.Unlock()
	if rm := c.registry.get(name, labels); rm != nil {
		c.registry.update(rm, value)
	} else {
		hash, labelNames := c.registry.hashLabels(labels)
		c.registry.storeMetric(name, value, prometheus.GaugeValue, hash, labels, labelNames)
	}
}

func (c collector) Collect(ch chan<- prometheus.Metric) {
	c.registry.mu.Lock()
	samples := make([]*registeredMetric, 0, c.registry.RefCount)
	for _, metric := range c.registry.Metrics {
		for _, rm := range metric {
			samples = append(samples, rm)
		}
	}
	c.registry.mu.Unlock()
	for _, sample := range samples {
		m, _ := prometheus.NewConstMetric(
			prometheus.NewDesc(sample.name, sample.help, sample.labelNames, prometheus.Labels{}),
			sample.valueType,
			sample.value,
			sample.labelValues...,
		)
		ch <- m
	}
}

func (c collector) Describe(_ chan<- *prometheus.Desc) {}
