package logger

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var currentLevel atomic.Int32

var std = log.New(os.Stderr, "", log.LstdFlags)

func init() {
	currentLevel.Store(int32(INFO))
}

func SetLevel(l Level) {
	currentLevel.Store(int32(l))
}

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	}
	return "?"
}

func logAt(l Level, component, msg string, fields map[string]interface{}) {
	if l < Level(currentLevel.Load()) {
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", l))
	if component != "" {
		b.WriteString(fmt.Sprintf(" [%s]", component))
	}
	b.WriteString(" ")
	b.WriteString(msg)

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", k, fields[k]))
		}
	}

	std.Println(b.String())
}

func Debug(msg string) { logAt(DEBUG, "", msg, nil) }
func Info(msg string)  { logAt(INFO, "", msg, nil) }
func Warn(msg string)  { logAt(WARN, "", msg, nil) }
func Error(msg string) { logAt(ERROR, "", msg, nil) }

func DebugC(component, msg string) { logAt(DEBUG, component, msg, nil) }
func InfoC(component, msg string)  { logAt(INFO, component, msg, nil) }
func WarnC(component, msg string)  { logAt(WARN, component, msg, nil) }
func ErrorC(component, msg string) { logAt(ERROR, component, msg, nil) }

func DebugCF(component, msg string, fields map[string]interface{}) {
	logAt(DEBUG, component, msg, fields)
}

func InfoCF(component, msg string, fields map[string]interface{}) {
	logAt(INFO, component, msg, fields)
}

func WarnCF(component, msg string, fields map[string]interface{}) {
	logAt(WARN, component, msg, fields)
}

func ErrorCF(component, msg string, fields map[string]interface{}) {
	logAt(ERROR, component, msg, fields)
}
