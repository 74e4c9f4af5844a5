/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/cmd/goredis-server/main.go
*/

// Command goredis-server boots the single-threaded RESP2 key-value
// server: load configuration, set up structured logging, open the
// listening socket, and run the epoll-driven event loop until a
// shutdown signal arrives.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"goredis-server/internal/command"
	"goredis-server/internal/config"
	"goredis-server/internal/netio"
)

const banner = `>>> goredis-server <<<`

func main() {
	fmt.Println(banner)

	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: goredis-server [config-file]")
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logrus.New()
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	listenFd, err := netio.Listen(cfg.Bind, cfg.Port)
	if err != nil {
		log.WithError(err).Fatal("failed to open listening socket")
	}
	log.WithFields(logrus.Fields{"bind": cfg.Bind, "port": cfg.Port}).Info("listening")

	server := command.NewServer(cfg, log)
	loop, err := netio.NewLoop(listenFd, server, log.WithField("component", "netio"))
	if err != nil {
		log.WithError(err).Fatal("failed to start event loop")
	}

	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.WithField("signal", sig.String()).Info("shutdown signal received")
		close(stop)
	}()

	if err := loop.Run(stop); err != nil {
		log.WithError(err).Fatal("event loop exited with error")
	}
	log.Info("goodbye")
}
