package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/joeydtaylor/wavekit/pkg/internal/types"
)

// BinarySignalEncoder writes a Signal in a compact little-endian layout: string
// fields are length-prefixed, metadata is fixed-width, and points follow as
// time/value float64 pairs.
type BinarySignalEncoder struct{}

// BinarySignalDecoder reads the layout produced by BinarySignalEncoder.
type BinarySignalDecoder struct{}

func NewBinarySignalEncoder() *BinarySignalEncoder {
	return &BinarySignalEncoder{}
}

func NewBinarySignalDecoder() *BinarySignalDecoder {
	return &BinarySignalDecoder{}
}

func (e *BinarySignalEncoder) Encode(w io.Writer, signal *types.Signal) error {
	if signal == nil {
		return fmt.Errorf("cannot encode a nil signal")
	}

	if err := writeString(w, signal.ID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(signal.Type)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, signal.Amplitude); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, signal.Frequency); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, signal.Phase); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, signal.TimeInterval); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(signal.NoiseLevelPercent)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, signal.CreatedAt.UnixNano()); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, int32(len(signal.Points))); err != nil {
		return err
	}
	for _, p := range signal.Points {
		if err := binary.Write(w, binary.LittleEndian, p.Time); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, p.Value); err != nil {
			return err
		}
	}

	return nil
}

func (d *BinarySignalDecoder) Decode(r io.Reader) (*types.Signal, error) {
	var signal types.Signal

	id, err := readString(r)
	if err != nil {
		return nil, err
	}
	signal.ID = id

	var waveType int32
	if err := binary.Read(r, binary.LittleEndian, &waveType); err != nil {
		return nil, err
	}
	signal.Type = types.WaveformType(waveType)

	if err := binary.Read(r, binary.LittleEndian, &signal.Amplitude); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &signal.Frequency); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &signal.Phase); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &signal.TimeInterval); err != nil {
		return nil, err
	}

	var noiseLevel int32
	if err := binary.Read(r, binary.LittleEndian, &noiseLevel); err != nil {
		return nil, err
	}
	signal.NoiseLevelPercent = int(noiseLevel)

	var createdAt int64
	if err := binary.Read(r, binary.LittleEndian, &createdAt); err != nil {
		return nil, err
	}
	signal.CreatedAt = time.Unix(0, createdAt)

	var pointCount int32
	if err := binary.Read(r, binary.LittleEndian, &pointCount); err != nil {
		return nil, err
	}
	if pointCount < 0 {
		return nil, fmt.Errorf("invalid point count %d", pointCount)
	}

	signal.Points = make([]types.SignalPoint, pointCount)
	for i := range signal.Points {
		if err := binary.Read(r, binary.LittleEndian, &signal.Points[i].Time); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &signal.Points[i].Value); err != nil {
			return nil, err
		}
	}

	return &signal, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	var length int32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return "", err
	}
	if length < 0 {
		return "", fmt.Errorf("invalid string length %d", length)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
