package xopdiag

import "github.com/xoplog/xopdiag/xopnum"

// std is the process-wide logger behind the package level functions.
// It is created at package initialization with logging disabled
// (threshold None), writes to standard error, and is never replaced.
// Its threshold is an atomic so any goroutine may read or change it
// at any time.
var std = New()

// Default returns the process-wide logger
func Default() *Logger { return std }

// SetLevel changes the threshold of the Default logger
func SetLevel(level xopnum.Severity) { std.SetLevel(level) }

// GetLevel returns the threshold of the Default logger
func GetLevel() xopnum.Severity { return std.GetLevel() }

func Enabled(level xopnum.Severity) bool { return std.Enabled(level) }

func Log(level xopnum.Severity, msg func() string) { std.Log(level, msg) }

func Verbose(msg func() string) { std.Log(xopnum.Verbose, msg) }
func Debug(msg func() string)   { std.Log(xopnum.Debug, msg) }
func Info(msg func() string)    { std.Log(xopnum.Info, msg) }
func Warning(msg func() string) { std.Log(xopnum.Warning, msg) }
func Error(msg func() string)   { std.Log(xopnum.Error, msg) }
