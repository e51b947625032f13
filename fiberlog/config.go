package fiberlog

import "github.com/sirupsen/logrus"

type Config struct {
	Logger *logrus.Logger
	Tags   []string

	// SkipPaths are path prefixes left out of the request log, health probes mostly.
	SkipPaths []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
