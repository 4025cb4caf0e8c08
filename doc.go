/*
Package xopdiag is a small leveled logger for library diagnostics.

Messages are passed as functions so that building the text, which may
hex-encode buffers or walk lists of handles, only happens when the
line will actually be written:

	xopdiag.SetLevel(xopnum.Debug)
	xopdiag.Debug(func() string {
		return "wrote " + xopdesc.Bytes(value).Describe() + " to " + characteristic.Describe()
	})

Lines go to standard error and look like

	[BLE|DEBG|14:03:27.125]: wrote 0aff to Characteristic(#3, 00002a37-0000-1000-8000-00805f9b34fb)

Logging is off (threshold None) until SetLevel is called.  The exact
text of descriptions is not stable across versions.
*/
package xopdiag
