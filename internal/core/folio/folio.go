package folio

import (
	"fmt"
	"strings"
	"unicode"
)

// OrdenCompra builds the human-readable purchase order folio:
//
//	{obraCode}-{letter}{seq}{buyerInitials}-{supplierCode}
//
// consecutivo is the 1-based per-obra sequence. Sequences 1..99 use the "A"
// block ("A01".."A99"), 100..199 the "B" block, and so on. The same obra,
// buyer and supplier always regenerate the same folio for a given sequence.
func OrdenCompra(obraCode, compradorIniciales, proveedorCodigo string, consecutivo int) string {
	if consecutivo < 1 {
		consecutivo = 1
	}
	letra := rune('A' + consecutivo/100)
	num := consecutivo % 100
	return fmt.Sprintf("%s-%c%02d%s-%s",
		strings.TrimSpace(obraCode),
		letra,
		num,
		normalize(compradorIniciales),
		normalize(proveedorCodigo),
	)
}

// Requisicion builds the requisition number: REQ{obraCode}-{n}{residentInitials}.
func Requisicion(obraCode, residenteIniciales string, consecutivo int) string {
	if consecutivo < 1 {
		consecutivo = 1
	}
	return fmt.Sprintf("REQ%s-%d%s", strings.TrimSpace(obraCode), consecutivo, normalize(residenteIniciales))
}

// CodigoProveedor derives a supplier short code from its name when no
// explicit code was captured: the first three letters, uppercased.
func CodigoProveedor(nombre string) string {
	var b strings.Builder
	for _, r := range nombre {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() >= 3 {
				break
			}
		}
	}
	return b.String()
}

// Normalize strips spaces and uppercases, for case-insensitive folio lookups.
func Normalize(s string) string {
	return normalize(s)
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
