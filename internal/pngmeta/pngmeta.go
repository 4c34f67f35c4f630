// Package pngmeta inserts and recovers tEXt metadata chunks on encoded
// PNG images. The payload rides the PNG's ancillary chunk channel, so
// decoders that don't know the key ignore it and the pixel data is
// untouched.
package pngmeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

var (
	ErrNotPNG        = errors.New("not a png image")
	ErrKeyNotFound   = errors.New("metadata key not found")
	ErrInvalidKey    = errors.New("invalid metadata key")
	ErrCorruptChunk  = errors.New("corrupt png chunk")
	ErrInvalidValue  = errors.New("invalid metadata value")
	chunkTypeTEXT    = []byte("tEXt")
	chunkHeaderBytes = 8 // length + type
	chunkCRCBytes    = 4
)

// EmbedText returns a copy of img with one tEXt chunk (key, value)
// inserted directly after IHDR. The input bytes are never modified, so
// hashes computed over img stay valid.
func EmbedText(img []byte, key, value string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if bytes.ContainsRune([]byte(value), 0) {
		return nil, ErrInvalidValue
	}
	if !bytes.HasPrefix(img, pngSignature) {
		return nil, ErrNotPNG
	}

	// IHDR is mandatory and first; insert right after it.
	ihdrEnd, err := firstChunkEnd(img)
	if err != nil {
		return nil, err
	}

	chunk := buildTextChunk(key, value)

	out := make([]byte, 0, len(img)+len(chunk))
	out = append(out, img[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, img[ihdrEnd:]...)
	return out, nil
}

// ExtractText walks the chunk stream and returns the value of the first
// tEXt chunk carrying key.
func ExtractText(img []byte, key string) (string, error) {
	if !bytes.HasPrefix(img, pngSignature) {
		return "", ErrNotPNG
	}

	offset := len(pngSignature)
	for offset < len(img) {
		if offset+chunkHeaderBytes > len(img) {
			return "", ErrCorruptChunk
		}
		length := int(binary.BigEndian.Uint32(img[offset : offset+4]))
		chunkType := img[offset+4 : offset+8]
		dataStart := offset + chunkHeaderBytes
		dataEnd := dataStart + length
		if dataEnd+chunkCRCBytes > len(img) {
			return "", ErrCorruptChunk
		}

		if bytes.Equal(chunkType, chunkTypeTEXT) {
			data := img[dataStart:dataEnd]
			if sep := bytes.IndexByte(data, 0); sep >= 0 && string(data[:sep]) == key {
				want := binary.BigEndian.Uint32(img[dataEnd : dataEnd+chunkCRCBytes])
				got := crc32.ChecksumIEEE(img[offset+4 : dataEnd])
				if want != got {
					return "", ErrCorruptChunk
				}
				return string(data[sep+1:]), nil
			}
		}

		offset = dataEnd + chunkCRCBytes
	}
	return "", ErrKeyNotFound
}

func firstChunkEnd(img []byte) (int, error) {
	offset := len(pngSignature)
	if offset+chunkHeaderBytes > len(img) {
		return 0, ErrCorruptChunk
	}
	length := int(binary.BigEndian.Uint32(img[offset : offset+4]))
	if !bytes.Equal(img[offset+4:offset+8], []byte("IHDR")) {
		return 0, fmt.Errorf("%w: IHDR not first", ErrCorruptChunk)
	}
	end := offset + chunkHeaderBytes + length + chunkCRCBytes
	if end > len(img) {
		return 0, ErrCorruptChunk
	}
	return end, nil
}

func buildTextChunk(key, value string) []byte {
	data := make([]byte, 0, len(key)+1+len(value))
	data = append(data, key...)
	data = append(data, 0)
	data = append(data, value...)

	chunk := make([]byte, 0, chunkHeaderBytes+len(data)+chunkCRCBytes)
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(len(data)))
	chunk = append(chunk, chunkTypeTEXT...)
	chunk = append(chunk, data...)

	crc := crc32.NewIEEE()
	crc.Write(chunkTypeTEXT)
	crc.Write(data)
	chunk = binary.BigEndian.AppendUint32(chunk, crc.Sum32())
	return chunk
}

// tEXt keywords are 1-79 bytes and must not contain NUL.
func validateKey(key string) error {
	if len(key) == 0 || len(key) > 79 || bytes.ContainsRune([]byte(key), 0) {
		return ErrInvalidKey
	}
	return nil
}
