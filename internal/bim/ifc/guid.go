package ifc

import (
	"github.com/google/uuid"
)

// ============================================================
// GlobalId
// ============================================================

// ifcAlphabet — 64-символьный алфавит сжатых IFC GUID.
const ifcAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_$"

// NewGlobalID генерирует сжатый 22-символьный IfcGloballyUniqueId
// из случайного UUID: первый байт кодируется двумя символами,
// остальные 15 байт — пятью группами по 4 символа.
func NewGlobalID() string {
	return compressGUID(uuid.New())
}

func compressGUID(u uuid.UUID) string {
	out := make([]byte, 0, 22)

	out = append(out, base64Chunk(uint32(u[0]), 2)...)
	for i := 1; i < 16; i += 3 {
		v := uint32(u[i])<<16 | uint32(u[i+1])<<8 | uint32(u[i+2])
		out = append(out, base64Chunk(v, 4)...)
	}
	return string(out)
}

func base64Chunk(v uint32, width int) []byte {
	chunk := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		chunk[i] = ifcAlphabet[v%64]
		v /= 64
	}
	return chunk
}
