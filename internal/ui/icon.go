package ui

// iconBytes is a 16x16 ICO used for the system tray icon.
var iconBytes = []byte{
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x10, 0x10, 0x00, 0x00, 0x01, 0x00,
	0x20, 0x00, 0x68, 0x04, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00, 0x28, 0x00,
	0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x01, 0x00,
	0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x00, 0x00, 0x00, 0x00, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e,
	0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x36, 0x5e, 0xe8, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
