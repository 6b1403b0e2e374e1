// Command keepalive pings the /health endpoint on an interval so
// free-tier hosting does not spin the service down while users are
// likely to come back.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"
)

func main() {
	url := flag.String("url", "http://127.0.0.1:8000/health", "health endpoint to ping")
	interval := flag.Duration("interval", 10*time.Minute, "time between pings")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	log.Printf("pinging %s every %s", *url, *interval)
	for {
		resp, err := client.Get(*url)
		if err != nil {
			log.Printf("ping failed: %v", err)
		} else {
			resp.Body.Close()
			log.Printf("ping %s -> %d", *url, resp.StatusCode)
		}
		time.Sleep(*interval)
	}
}
