package vdp1

import (
	"encoding/binary"

	"github.com/jetsetilly/saturncore/internal/curated"
	"github.com/jetsetilly/saturncore/internal/logger"
)

// CommandType is the command-type field of a VDP1 command record
// (spec.md §4.2).
type CommandType int

const (
	CmdDrawNormalSprite CommandType = iota
	CmdDrawScaledSprite
	CmdDrawDistortedSprite
	CmdDrawPolygon
	CmdDrawPolylines
	CmdDrawLine
	CmdSetUserClipping
	CmdSetSystemClipping
	CmdSetLocalCoordinates
	cmdUnknown
)

// JumpMode is the jump-mode field of a command's control word (spec.md §4.2).
type JumpMode int

const (
	JumpNext JumpMode = iota
	JumpAssign
	JumpCall
	JumpReturn
)

// Vertex is a signed 13-bit local-coordinate pair.
type Vertex struct{ X, Y int16 }

// Command is a parsed 32-byte VDP1 command record.
type Command struct {
	End      bool
	Skip     bool
	Jump     JumpMode
	Type     CommandType
	rawType  uint16
	ClipMode int // 0=none,1=pre-clip,2=clip-and-draw
	FlipH    bool
	FlipV    bool

	DrawMode   uint16
	Color      uint16
	CharAddr   uint32
	CharSize   uint16
	Vertices   [4]Vertex
	GouraudPtr uint32
	JumpTarget uint32
}

const commandRecordSize = 32

// ParseCommand decodes the 32-byte record at addr in VRAM.
func ParseCommand(vram []byte, addr uint32) (Command, error) {
	if int(addr)+commandRecordSize > len(vram) {
		return Command{}, curated.Errorf(curated.CommandListCorrupt, addr, "out of VRAM bounds")
	}
	b := vram[addr : addr+commandRecordSize]

	ctrl := binary.BigEndian.Uint16(b[0:2])
	drawMode := binary.BigEndian.Uint16(b[2:4])
	color := binary.BigEndian.Uint16(b[4:6])

	var c Command
	c.End = ctrl&0x8000 != 0
	c.Skip = ctrl&0x0080 != 0
	c.Jump = JumpMode((ctrl >> 4) & 0x3)
	c.rawType = ctrl & 0xf
	c.ClipMode = int((drawMode >> 9) & 0x3)
	c.FlipH = drawMode&0x10 != 0
	c.FlipV = drawMode&0x20 != 0
	c.DrawMode = drawMode
	c.Color = color
	c.Type = classify(c.rawType)

	c.CharAddr = uint32(binary.BigEndian.Uint16(b[6:8])) << 3
	c.CharSize = binary.BigEndian.Uint16(b[8:10])

	for i := 0; i < 4; i++ {
		off := 10 + i*4
		c.Vertices[i] = Vertex{
			X: int16(binary.BigEndian.Uint16(b[off : off+2])),
			Y: int16(binary.BigEndian.Uint16(b[off+2 : off+4])),
		}
	}

	c.GouraudPtr = uint32(binary.BigEndian.Uint16(b[26:28])) << 3
	c.JumpTarget = uint32(binary.BigEndian.Uint16(b[28:30])) << 3

	return c, nil
}

func classify(rawType uint16) CommandType {
	switch rawType {
	case 0:
		return CmdDrawNormalSprite
	case 1:
		return CmdDrawScaledSprite
	case 2, 3:
		return CmdDrawDistortedSprite
	case 4:
		return CmdDrawPolygon
	case 5:
		return CmdDrawPolylines
	case 6:
		return CmdDrawLine
	case 8:
		return CmdSetUserClipping
	case 9:
		return CmdSetSystemClipping
	case 10:
		return CmdSetLocalCoordinates
	default:
		return cmdUnknown
	}
}

// RunFrame walks the command list starting at address 0 until an end
// command, an invalid command, or a jump-to-zero safeguard terminates the
// frame (spec.md §4.2, §7, §9). It always returns nil: a parse, execute or
// jump error is written to the log under the processor's tag and ends the
// frame, and is never propagated to the surrounding system.
func (p *Processor) RunFrame() error {
	p.ctx = RenderContext{}
	addr := uint32(0)

	for {
		cmd, err := ParseCommand(p.VRAM[:], addr)
		if err != nil {
			logger.Log(p.logTag, err.Error())
			p.ctx.FrameEnded = true
			return nil
		}

		if cmd.End {
			p.ctx.FrameEnded = true
			return nil
		}

		p.ctx.CommandAddr = addr
		if !cmd.Skip {
			if err := p.execute(cmd); err != nil {
				logger.Log(p.logTag, err.Error())
				p.ctx.FrameEnded = true
				return nil
			}
		}

		next, done, err := p.advance(addr, cmd)
		if err != nil {
			logger.Log(p.logTag, err.Error())
			p.ctx.FrameEnded = true
			return nil
		}
		if done {
			p.ctx.FrameEnded = true
			return nil
		}
		addr = next
	}
}

// advance resolves the jump-mode field of cmd, returning the next command
// address. done is true when the frame should end (spec.md §4.2, §9
// "VDP1 jump-to-zero ... ends the frame").
func (p *Processor) advance(addr uint32, cmd Command) (next uint32, done bool, err error) {
	switch cmd.Jump {
	case JumpNext:
		return addr + commandRecordSize, false, nil
	case JumpAssign:
		if cmd.JumpTarget == 0 {
			logger.Log(p.logTag, curated.JumpToZero)
			return 0, true, nil
		}
		return cmd.JumpTarget, false, nil
	case JumpCall:
		if !p.ctx.ReturnPending {
			p.ctx.ReturnAddr = addr + commandRecordSize
			p.ctx.ReturnPending = true
		}
		if cmd.JumpTarget == 0 {
			logger.Log(p.logTag, curated.JumpToZero)
			return 0, true, nil
		}
		return cmd.JumpTarget, false, nil
	case JumpReturn:
		if p.ctx.ReturnPending {
			p.ctx.ReturnPending = false
			return p.ctx.ReturnAddr, false, nil
		}
		return addr + commandRecordSize, false, nil
	default:
		return 0, false, curated.Errorf(curated.UnknownCommandType, cmd.rawType, addr)
	}
}

func (p *Processor) execute(cmd Command) error {
	switch cmd.Type {
	case CmdSetSystemClipping:
		p.Clip.System = rectFromVertex(cmd.Vertices[2])
		return nil
	case CmdSetUserClipping:
		p.Clip.User = Rect{
			X0: int(cmd.Vertices[0].X), Y0: int(cmd.Vertices[0].Y),
			X1: int(cmd.Vertices[2].X), Y1: int(cmd.Vertices[2].Y),
		}
		return nil
	case CmdSetLocalCoordinates:
		p.Clip.LocalX = int(cmd.Vertices[0].X)
		p.Clip.LocalY = int(cmd.Vertices[0].Y)
		return nil
	case CmdDrawNormalSprite, CmdDrawScaledSprite, CmdDrawDistortedSprite, CmdDrawPolygon:
		return p.drawQuad(cmd)
	case CmdDrawPolylines:
		return p.drawPolylines(cmd)
	case CmdDrawLine:
		return p.drawLine(cmd)
	default:
		return curated.Errorf(curated.UnknownCommandType, cmd.rawType, p.ctx.CommandAddr)
	}
}

// rectFromVertex builds a clip rectangle whose top-left is always (0,0):
// the system clip command only supplies the bottom-right corner.
func rectFromVertex(v Vertex) Rect {
	return Rect{X0: 0, Y0: 0, X1: int(v.X), Y1: int(v.Y)}
}
