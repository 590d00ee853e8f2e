package nes

// ppu registers, as exposed to the CPU via $2000-$2007 (mirrored every 8
// bytes through $3FFF).
const (
	regPPUCTRL   = 0
	regPPUMASK   = 1
	regPPUSTATUS = 2
	regOAMADDR   = 3
	regOAMDATA   = 4
	regPPUSCROLL = 5
	regPPUADDR   = 6
	regPPUDATA   = 7
)

const (
	ctrlNMIEnable    = 1 << 7
	ctrlSpriteHeight = 1 << 5
	ctrlBGTable      = 1 << 4
	ctrlSpriteTable  = 1 << 3
	ctrlIncrement32  = 1 << 2

	maskShowBG  = 1 << 3
	maskShowSpr = 1 << 4

	statusSpriteOverflow = 1 << 5
	statusSprite0Hit     = 1 << 6
	statusVBlank         = 1 << 7
)

type sprite struct {
	x, y  uint8
	tile  uint8
	attr  uint8
	index uint8
	patLo uint8
	patHi uint8
}

// PPU implements a 2C02-style picture processing unit: per-dot
// background shift registers plus attribute latches, sprite evaluation
// into a secondary OAM of up to 8 sprites, and a 256x240 RGBA
// framebuffer. It is driven one dot at a time by the scheduler, which
// ticks it 3 times per CPU cycle and samples NMILine() for a 0->1 edge.
type PPU struct {
	cart *Cart

	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [256]uint8

	// v/t/x/w: current/temp VRAM address, fine-x scroll, write toggle.
	v, t uint16
	x    uint8
	w    bool

	readBuffer uint8 // PPUDATA read-ahead buffer
	busLatch   uint8 // last value written to any register, for open-bus reads

	nametables [0x800]uint8
	paletteRAM [0x20]uint8

	cycle    int
	scanline int
	frame    uint64
	region   Region

	// background pipeline
	ntByte, atByte, bgLoByte, bgHiByte uint8
	bgShiftLo, bgShiftHi               uint16
	atShiftLo, atShiftHi               uint8
	atLatchLo, atLatchHi               uint8

	// sprite pipeline
	secondaryOAM    [8]sprite
	spriteCount     int
	spriteOverflow  bool
	sprite0InSecOAM bool

	frameBuf [256 * 240]uint32

	a12Prev bool // last-seen state of PPU address line A12, for mapper IRQ notify
}

func NewPPU() *PPU {
	return &PPU{region: RegionNTSC}
}

func (p *PPU) setCart(c *Cart) { p.cart = c }

func (p *PPU) Reset() {
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.oamAddr = 0
	p.v, p.t, p.x = 0, 0, 0
	p.w = false
	p.cycle, p.scanline = 0, 0
	p.bgShiftLo, p.bgShiftHi = 0, 0
	p.a12Prev = false
}

// NMILine reports the current state of the PPU's NMI output line: high
// exactly when VBlank has occurred and NMI generation is enabled.
func (p *PPU) NMILine() bool {
	return p.status&statusVBlank != 0 && p.ctrl&ctrlNMIEnable != 0
}

// FrameBuffer returns the live frame being drawn into / most recently
// completed. The scheduler publishes it to the video sink after VBlank.
func (p *PPU) FrameBuffer() *[256 * 240]uint32 {
	return &p.frameBuf
}

func (p *PPU) readRegister(reg uint8) uint8 {
	switch reg {
	case regPPUSTATUS:
		v := p.status & (statusSprite0Hit | statusSpriteOverflow | statusVBlank)
		v |= p.busLatch & 0x1F
		p.status &^= statusVBlank
		p.w = false
		return v
	case regOAMDATA:
		return p.oam[p.oamAddr]
	case regPPUDATA:
		value := p.readBuffer
		addr := p.v & 0x3FFF
		p.readBuffer = p.vramRead(addr)
		if addr >= 0x3F00 {
			// palette reads are not buffered, they return immediately
			value = p.paletteRead(addr)
		}
		p.incrementV()
		return value
	default:
		return p.busLatch
	}
}

func (p *PPU) writeRegister(reg uint8, data uint8) {
	p.busLatch = data
	switch reg {
	case regPPUCTRL:
		p.ctrl = data
		p.t = (p.t &^ 0x0C00) | (uint16(data&0x3) << 10)
	case regPPUMASK:
		p.mask = data
	case regOAMADDR:
		p.oamAddr = data
	case regOAMDATA:
		p.oam[p.oamAddr] = data
		p.oamAddr++
	case regPPUSCROLL:
		if !p.w {
			p.t = (p.t &^ 0x001F) | uint16(data>>3)
			p.x = data & 0x7
		} else {
			p.t = (p.t &^ 0x73E0) | (uint16(data&0x07) << 12) | (uint16(data&0xF8) << 2)
		}
		p.w = !p.w
	case regPPUADDR:
		if !p.w {
			p.t = (p.t &^ 0x7F00) | (uint16(data&0x3F) << 8)
		} else {
			p.t = (p.t &^ 0x00FF) | uint16(data)
			p.v = p.t
		}
		p.w = !p.w
	case regPPUDATA:
		p.vramWrite(p.v&0x3FFF, data)
		p.incrementV()
	}
}

func (p *PPU) incrementV() {
	if p.ctrl&ctrlIncrement32 != 0 {
		p.v += 32
	} else {
		p.v++
	}
}

// WriteOAMDMA copies a 256-byte page into OAM starting at the current
// OAM address, as driven by the bus's $4014 handler.
func (p *PPU) WriteOAMDMA(page [256]uint8) {
	for i := 0; i < 256; i++ {
		p.oam[uint8(int(p.oamAddr)+i)] = page[i]
	}
}

func (p *PPU) nametableMirror(addr uint16) uint16 {
	addr &= 0x0FFF
	table := addr / 0x400
	offset := addr % 0x400
	if p.cart.Mirror() == MirrorVertical {
		return (table%2)*0x400 + offset
	}
	return (table/2)*0x400 + offset
}

// notifyA12 tracks edges on PPU address line A12 (bit 12, i.e. the
// $1000 boundary within the CHR window) across VRAM accesses, and
// forwards rising/falling transitions to the mapper for MMC3-style
// scanline IRQ counters.
func (p *PPU) notifyA12(addr uint16) {
	if addr >= 0x2000 {
		return
	}
	a12 := addr&0x1000 != 0
	if a12 != p.a12Prev {
		p.cart.NotifyPPUA12(a12)
		p.a12Prev = a12
	}
}

func (p *PPU) vramRead(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		p.notifyA12(addr)
		return p.cart.ReadCHR(addr)
	case addr < 0x3F00:
		return p.nametables[p.nametableMirror(addr)]
	default:
		return p.paletteRead(addr)
	}
}

func (p *PPU) vramWrite(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		p.notifyA12(addr)
		p.cart.WriteCHR(addr, data)
	case addr < 0x3F00:
		p.nametables[p.nametableMirror(addr)] = data
	default:
		p.paletteWrite(addr, data)
	}
}

func (p *PPU) paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1F
	// $3F10/$14/$18/$1C mirror $3F00/$04/$08/$0C (sprite backdrop entries).
	if idx >= 0x10 && idx%4 == 0 {
		idx -= 0x10
	}
	return idx
}

func (p *PPU) paletteRead(addr uint16) uint8 {
	return p.paletteRAM[p.paletteIndex(addr)]
}

func (p *PPU) paletteWrite(addr uint16, data uint8) {
	p.paletteRAM[p.paletteIndex(addr)] = data & 0x3F
}

// GetColorFromPalette exposes a palette entry for host debug overlays
// (e.g. the palette-swatch view), palette in [0,7], index in [0,3].
func (p *PPU) GetColorFromPalette(palette, index uint8) uint32 {
	addr := uint16(palette)*4 + uint16(index)
	return nesPalette[p.paletteRAM[p.paletteIndex(0x3F00+addr)]&0x3F]
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskShowBG|maskShowSpr) != 0
}

// PatternTable renders one of the two 128x128 CHR pattern tables (table
// in [0,1]) through the given palette, for host debug overlays.
func (p *PPU) PatternTable(palette, table uint8) [128 * 128]uint32 {
	var out [128 * 128]uint32
	if p.cart == nil {
		return out
	}
	base := uint16(table) * 0x1000
	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			tileOffset := uint16(tileY*256 + tileX*16)
			for row := 0; row < 8; row++ {
				lo := p.cart.ReadCHR(base + tileOffset + uint16(row))
				hi := p.cart.ReadCHR(base + tileOffset + uint16(row) + 8)
				for col := 0; col < 8; col++ {
					bit := uint8(7 - col)
					colorIdx := ((hi>>bit)&1)<<1 | (lo>>bit)&1
					x := tileX*8 + col
					y := tileY*8 + row
					out[y*128+x] = p.GetColorFromPalette(palette, colorIdx)
				}
			}
		}
	}
	return out
}

// incrementCoarseX / incrementY / copyX / copyY implement the standard
// scroll-counter update sequence used by real PPU hardware, driven from
// specific dots within the visible and pre-render scanlines.
func (p *PPU) incrementCoarseX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	y := (p.v & 0x03E0) >> 5
	switch y {
	case 29:
		y = 0
		p.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.v = (p.v &^ 0x03E0) | (y << 5)
}

func (p *PPU) copyX() {
	p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
}

func (p *PPU) copyY() {
	p.v = (p.v &^ 0x7BE0) | (p.t & 0x7BE0)
}

func (p *PPU) fetchBGByte() {
	switch p.cycle % 8 {
	case 1:
		p.ntByte = p.vramRead(0x2000 | (p.v & 0x0FFF))
	case 3:
		addr := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
		shift := ((p.v >> 4) & 4) | (p.v & 2)
		p.atByte = (p.vramRead(addr) >> shift) & 0x3
	case 5:
		table := uint16(0)
		if p.ctrl&ctrlBGTable != 0 {
			table = 0x1000
		}
		fineY := (p.v >> 12) & 0x7
		p.bgLoByte = p.vramRead(table + uint16(p.ntByte)*16 + fineY)
	case 7:
		table := uint16(0)
		if p.ctrl&ctrlBGTable != 0 {
			table = 0x1000
		}
		fineY := (p.v >> 12) & 0x7
		p.bgHiByte = p.vramRead(table + uint16(p.ntByte)*16 + fineY + 8)
	case 0:
		p.reloadShiftRegisters()
		p.incrementCoarseX()
	}
}

func (p *PPU) reloadShiftRegisters() {
	p.bgShiftLo = (p.bgShiftLo &^ 0xFF) | uint16(p.bgLoByte)
	p.bgShiftHi = (p.bgShiftHi &^ 0xFF) | uint16(p.bgHiByte)
	lo, hi := uint8(0), uint8(0)
	if p.atByte&1 != 0 {
		lo = 0xFF
	}
	if p.atByte&2 != 0 {
		hi = 0xFF
	}
	p.atLatchLo, p.atLatchHi = lo, hi
}

func (p *PPU) shiftBackground() {
	p.bgShiftLo <<= 1
	p.bgShiftHi <<= 1
	p.atShiftLo = (p.atShiftLo << 1) | (p.atLatchLo & 1)
	p.atShiftHi = (p.atShiftHi << 1) | (p.atLatchHi & 1)
}

// evaluateSprites runs at the end of a visible scanline to build the
// next scanline's secondary OAM (up to 8 sprites), setting the overflow
// flag and flagging whether sprite 0 is among them (for sprite-0 hit).
func (p *PPU) evaluateSprites(forScanline int) {
	p.spriteCount = 0
	p.spriteOverflow = false
	p.sprite0InSecOAM = false

	height := 8
	if p.ctrl&ctrlSpriteHeight != 0 {
		height = 16
	}

	for i := 0; i < 64; i++ {
		y := int(p.oam[i*4])
		if forScanline < y || forScanline >= y+height {
			continue
		}
		if p.spriteCount == 8 {
			p.spriteOverflow = true
			break
		}
		s := sprite{
			y:     p.oam[i*4],
			tile:  p.oam[i*4+1],
			attr:  p.oam[i*4+2],
			x:     p.oam[i*4+3],
			index: uint8(i),
		}
		row := forScanline - y
		if s.attr&0x80 != 0 {
			row = height - 1 - row
		}
		table := uint16(0)
		tile := uint16(s.tile)
		if height == 16 {
			table = uint16(s.tile&1) * 0x1000
			tile = uint16(s.tile &^ 1)
			if row >= 8 {
				tile++
				row -= 8
			}
		} else if p.ctrl&ctrlSpriteTable != 0 {
			table = 0x1000
		}
		s.patLo = p.vramRead(table + tile*16 + uint16(row))
		s.patHi = p.vramRead(table + tile*16 + uint16(row) + 8)
		if i == 0 {
			p.sprite0InSecOAM = true
		}
		p.secondaryOAM[p.spriteCount] = s
		p.spriteCount++
	}
}

func (p *PPU) backgroundPixel() (pixel uint8, opaque bool) {
	if p.mask&maskShowBG == 0 {
		return 0, false
	}
	bit := uint16(15 - p.x)
	lo := uint8((p.bgShiftLo >> bit) & 1)
	hi := uint8((p.bgShiftHi >> bit) & 1)
	pat := lo | hi<<1
	abit := uint8(7 - p.x)
	alo := (p.atShiftLo >> abit) & 1
	ahi := (p.atShiftHi >> abit) & 1
	attr := alo | ahi<<1
	if pat == 0 {
		return 0, false
	}
	return attr<<2 | pat, true
}

func (p *PPU) spritePixel(x int) (pixel uint8, priority uint8, isSprite0 bool, opaque bool) {
	if p.mask&maskShowSpr == 0 {
		return 0, 0, false, false
	}
	for i := 0; i < p.spriteCount; i++ {
		s := &p.secondaryOAM[i]
		off := x - int(s.x)
		if off < 0 || off > 7 {
			continue
		}
		col := off
		if s.attr&0x40 == 0 {
			col = 7 - off
		}
		lo := (s.patLo >> col) & 1
		hi := (s.patHi >> col) & 1
		pat := lo | hi<<1
		if pat == 0 {
			continue
		}
		pal := s.attr & 0x3
		return pal<<2 | pat, (s.attr >> 5) & 1, p.sprite0InSecOAM && s.index == 0, true
	}
	return 0, 0, false, false
}

// Step advances the PPU by one PPU cycle (dot). The scheduler calls this
// 3 times per CPU cycle.
func (p *PPU) Step() {
	visible := p.scanline < 240
	preRender := p.scanline == p.region.ScanlinesPerFrame()-1
	rendering := p.renderingEnabled()

	if (visible || preRender) && rendering {
		if (p.cycle >= 1 && p.cycle <= 256) || (p.cycle >= 321 && p.cycle <= 336) {
			p.fetchBGByte()
			p.shiftBackground()
		}
		if p.cycle == 256 {
			p.incrementY()
		}
		if p.cycle == 257 {
			p.copyX()
		}
		if preRender && p.cycle >= 280 && p.cycle <= 304 {
			p.copyY()
		}
	}

	if visible && p.cycle == 257 && rendering {
		p.evaluateSprites(p.scanline)
	}

	if visible && p.cycle >= 1 && p.cycle <= 256 {
		bgPixel, bgOpaque := p.backgroundPixel()
		sprPixel, sprPriority, isSprite0, sprOpaque := p.spritePixel(p.cycle - 1)

		if bgOpaque && sprOpaque && isSprite0 && p.cycle != 256 {
			p.status |= statusSprite0Hit
		}

		var colorIdx uint8
		switch {
		case !bgOpaque && !sprOpaque:
			colorIdx = p.paletteRAM[0]
		case !bgOpaque && sprOpaque:
			colorIdx = p.paletteRAM[p.paletteIndex(0x3F00+uint16(sprPixel))]
		case bgOpaque && !sprOpaque:
			colorIdx = p.paletteRAM[p.paletteIndex(0x3F00+uint16(bgPixel))]
		default:
			if sprPriority == 0 {
				colorIdx = p.paletteRAM[p.paletteIndex(0x3F00+uint16(sprPixel))]
			} else {
				colorIdx = p.paletteRAM[p.paletteIndex(0x3F00+uint16(bgPixel))]
			}
		}
		p.frameBuf[p.scanline*256+(p.cycle-1)] = nesPalette[colorIdx&0x3F]
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.status |= statusVBlank
	}
	if preRender && p.cycle == 1 {
		p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
	}

	p.cycle++
	if p.cycle > 340 {
		p.cycle = 0
		p.scanline++
		if p.scanline > p.region.ScanlinesPerFrame()-1 {
			p.scanline = 0
			p.frame++
		}
	}
}

// FrameComplete reports whether the PPU just finished the last dot of a
// frame (scanline/cycle wrapped to 0/0).
func (p *PPU) FrameComplete() bool {
	return p.cycle == 0 && p.scanline == 0
}

// nesPalette is the standard 64-entry 2C02 RGBA8888 palette.
var nesPalette = [64]uint32{
	0x666666FF, 0x002A88FF, 0x1412A7FF, 0x3B00A4FF, 0x5C007EFF, 0x6E0040FF, 0x6C0600FF, 0x561D00FF,
	0x333500FF, 0x0B4800FF, 0x005200FF, 0x004F08FF, 0x00404DFF, 0x000000FF, 0x000000FF, 0x000000FF,
	0xADADADFF, 0x155FD9FF, 0x4240FFFF, 0x7527FEFF, 0xA01ACCFF, 0xB71E7BFF, 0xB53120FF, 0x994E00FF,
	0x6B6D00FF, 0x388700FF, 0x0C9300FF, 0x008F32FF, 0x007C8DFF, 0x000000FF, 0x000000FF, 0x000000FF,
	0xFFFEFFFF, 0x64B0FFFF, 0x9290FFFF, 0xC676FFFF, 0xF36AFFFF, 0xFE6ECCFF, 0xFE8170FF, 0xEA9E22FF,
	0xBCBE00FF, 0x88D800FF, 0x5CE430FF, 0x45E082FF, 0x48CDDEFF, 0x4F4F4FFF, 0x000000FF, 0x000000FF,
	0xFFFEFFFF, 0xC0DFFFFF, 0xD3D2FFFF, 0xE8C8FFFF, 0xFBC2FFFF, 0xFEC4EAFF, 0xFECCC5FF, 0xF7D8A5FF,
	0xE4E594FF, 0xCFEF96FF, 0xBDF4ABFF, 0xB3F3CCFF, 0xB5EBF2FF, 0xB8B8B8FF, 0x000000FF, 0x000000FF,
}
