// Package logger writes diagnostic dumps of pipeline stages to a logs
// directory as JSON or plain text files.
package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// InitLogs ensures the logs directory exists and removes any existing .json
// files so a run starts with a clean logs directory.
func InitLogs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	pattern := filepath.Join(dir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	for _, f := range files {
		// ignore individual remove errors but continue trying to clean others
		_ = os.Remove(f)
	}
	return nil
}

// LogJSON writes the provided value as pretty JSON to dir/<name>.json. It
// writes to a temporary file first and renames to the final path to reduce
// the chance of partial files.
func LogJSON(dir, name string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return logBytes(dir, name+".json", b)
}

// LogText writes raw text to dir/<name>, atomically like LogJSON.
func LogText(dir, name string, text string) error {
	return logBytes(dir, name, []byte(text))
}

func logBytes(dir, name string, b []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	final := filepath.Join(dir, filepath.Base(name))
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
