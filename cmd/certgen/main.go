package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goserg/trucoserver/internal/tlscert"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var certPath, keyPath, hosts string
	flag.StringVar(&certPath, "cert", "cert.pem", "certificate output path")
	flag.StringVar(&keyPath, "key", "key.pem", "private key output path")
	flag.StringVar(&hosts, "hosts", "", "comma separated ips or names, loopback when empty")
	flag.Parse()

	var list []string
	if hosts != "" {
		list = strings.Split(hosts, ",")
	}
	return tlscert.Generate(certPath, keyPath, list)
}
