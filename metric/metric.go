package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func serveHTTP(addr, ep string, registry *prometheus.Registry) {
	http.Handle(ep, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalln(err)
	}
}

func main() {
	path := flag.String("log", "sockbenchc.log", "path of the JSON log file")
	addr := flag.String("addr", ":8093", "listen address for the metrics endpoint")
	flag.Parse()

	c := newCollector(*path)
	registry := prometheus.NewRegistry()
	if err := registry.Register(c); err != nil {
		log.Println(err)
	}
	serveHTTP(*addr, "/metrics", registry)
}
