package wxextract

import "github.com/sirupsen/logrus"

func (ext *Extractor) logf(format string, args ...interface{}) {
	if ext.EnableLog {
		logrus.Printf(format, args...)
	}
}

func (ext *Extractor) logResponse(url string, statusCode int, size int) {
	if !ext.EnableLog || !ext.EnableVerboseLog {
		return
	}

	logrus.WithFields(logrus.Fields{
		"status": statusCode,
		"bytes":  size,
	}).Printf("GET %s", url)
}
