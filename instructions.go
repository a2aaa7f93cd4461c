package st7735

// ST7735 command set. Only the subset the driver uses is listed.
const (
	cmdSWRESET = 0x01 // Software reset
	cmdSLPOUT  = 0x11 // Sleep out
	cmdINVOFF  = 0x20 // Display inversion off
	cmdINVON   = 0x21 // Display inversion on
	cmdDISPOFF = 0x28 // Display off
	cmdDISPON  = 0x29 // Display on
	cmdCASET   = 0x2A // Column address set
	cmdRASET   = 0x2B // Row address set
	cmdRAMWR   = 0x2C // Memory write
	cmdMADCTL  = 0x36 // Memory data access control
	cmdCOLMOD  = 0x3A // Interface pixel format
	cmdFRMCTR1 = 0xB1 // Frame rate control (normal mode)
	cmdFRMCTR2 = 0xB2 // Frame rate control (idle mode)
	cmdFRMCTR3 = 0xB3 // Frame rate control (partial mode)
	cmdINVCTR  = 0xB4 // Display inversion control
	cmdPWCTR1  = 0xC0 // Power control 1
	cmdPWCTR2  = 0xC1 // Power control 2
	cmdPWCTR3  = 0xC2 // Power control 3
	cmdPWCTR4  = 0xC3 // Power control 4
	cmdPWCTR5  = 0xC4 // Power control 5
	cmdVMCTR1  = 0xC5 // VCOM control 1
)

// MADCTL bit for BGR subpixel order panels.
const madctlBGR = 0x08
