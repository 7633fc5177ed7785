/*  This file is part of code-fractions.
    code-fractions is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    code-fractions is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with code-fractions.  If not, see <http://www.gnu.org/licenses/>.

    Author: motchy
    Date: 15-10-2026 */

// Package cmdhist decodes serial command history dumps taken from the RF-IC
// controller and extracts the register values written to the RF-IC.
package cmdhist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Layout of the dump. All fields are little-endian uint16, packed on 2 bytes.
const (
	LogBufLen   = 200
	RecordSize  = 8
	HistorySize = offBuf + LogBufLen*RecordSize // 1602

	offNumEntry = 0
	offBuf      = 2

	// offsets inside a record
	offCmd1  = 0
	offCmd2  = 2
	offData1 = 4
	offData2 = 6
)

// DevIDFoo is the device identifier of the RF-IC in Cmd1's upper byte.
const DevIDFoo = 0x0B

var (
	ErrNotFound  = errors.New("file not found")
	ErrTruncated = errors.New("truncated command history")
	ErrIO        = errors.New("i/o error")
)

// Command is one entry of the serial command log.
type Command struct {
	Cmd1, Cmd2, Data1, Data2 uint16
}

// DevID returns the device that issued the command.
func (c Command) DevID() uint8 {
	return uint8(c.Cmd1 >> 8)
}

// History mirrors the controller's fixed size log buffer. NumEntry is
// reported by the controller but the whole buffer is always scanned.
type History struct {
	NumEntry uint16
	Buf      [LogBufLen]Command
}

// RegVal is a register write to the RF-IC.
type RegVal struct {
	SysID   int `yaml:"sys_id"`
	RegAddr int `yaml:"reg_addr"`
	Val     int `yaml:"val"`
}

func (rv RegVal) String() string {
	return fmt.Sprintf("sys=%d reg=0x%02X val=0x%02X", rv.SysID, rv.RegAddr, rv.Val)
}

// Decode parses the first HistorySize bytes of data. Extra bytes are ignored.
func Decode(data []byte) (*History, error) {
	if len(data) < HistorySize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncated, len(data), HistorySize)
	}
	h := &History{
		NumEntry: binary.LittleEndian.Uint16(data[offNumEntry:]),
	}
	for k := range h.Buf {
		rec := data[offBuf+k*RecordSize:]
		h.Buf[k] = Command{
			Cmd1:  binary.LittleEndian.Uint16(rec[offCmd1:]),
			Cmd2:  binary.LittleEndian.Uint16(rec[offCmd2:]),
			Data1: binary.LittleEndian.Uint16(rec[offData1:]),
			Data2: binary.LittleEndian.Uint16(rec[offData2:]),
		}
	}
	return h, nil
}

// Read consumes exactly HistorySize bytes from r.
func Read(r io.Reader) (*History, error) {
	buf := make([]byte, HistorySize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncated, n, HistorySize)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Decode(buf)
}

// RegVals keeps the commands sent to the RF-IC, in log order.
func (h *History) RegVals() []RegVal {
	vals := make([]RegVal, 0, LogBufLen)
	for _, each := range h.Buf {
		if each.DevID() != DevIDFoo {
			continue
		}
		vals = append(vals, RegVal{
			SysID:   0,
			RegAddr: int(each.Data2>>8) & 0xFF,
			Val:     int(each.Data2) & 0xFF,
		})
	}
	return vals
}

// Load reads and decodes the dump stored at path.
func Load(path string) (*History, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cmdhist: %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("cmdhist: %s: %w: %w", path, ErrIO, err)
	}
	defer f.Close()
	h, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("cmdhist: %s: %w", path, err)
	}
	return h, nil
}

// Extract returns the RF-IC register values logged in the dump at path.
func Extract(path string) ([]RegVal, error) {
	h, err := Load(path)
	if err != nil {
		return nil, err
	}
	return h.RegVals(), nil
}
