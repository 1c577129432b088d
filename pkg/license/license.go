// Package license gera e valida códigos de licença temporais no formato
// PRO-XXXX-XXXX-SS. O código é derivado do e-mail do assinante e do mês/ano
// corrente: muda todo mês, o que impede decorar um código e usá-lo para sempre.
package license

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// hash32 hash aditivo com overflow de 32 bits (h*31 + c), compatível com a
// geração histórica dos códigos. Trocar o algoritmo invalida códigos emitidos.
func hash32(s string) int32 {
	var h int32
	for _, c := range []byte(s) {
		h = h*31 + int32(c)
	}
	return h
}

func hexPart(h int32, width int) string {
	v := int64(h)
	if v < 0 {
		v = -v
	}
	part := strings.ToUpper(strconv.FormatInt(v, 16))
	for len(part) < width {
		part = "0" + part
	}
	return part[:width]
}

// GenerateForEmail produz o código do mês de `now` para o e-mail informado.
func GenerateForEmail(email string, now time.Time) string {
	cleanEmail := strings.ToLower(strings.TrimSpace(email))
	monthKey := fmt.Sprintf("%d%d", int(now.Month()), now.Year())

	part1 := hexPart(hash32(cleanEmail), 4)
	part2 := hexPart(hash32(monthKey), 4)

	monthNum, _ := strconv.Atoi(monthKey)
	salt := hexPart(int32(len(cleanEmail)*7+monthNum%99), 2)

	return fmt.Sprintf("PRO-%s-%s-%s", part1, part2, salt)
}

// Valid confere se o código apresentado é o código vigente do e-mail. Apenas o
// código do mês corrente é aceito.
func Valid(email, code string, now time.Time) bool {
	clean := strings.ToUpper(strings.TrimSpace(code))
	return clean != "" && clean == GenerateForEmail(email, now)
}
