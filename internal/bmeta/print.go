// Package bmeta выводит метаданные сборки, переданные через -ldflags.
package bmeta

import (
	"fmt"
	"io"
	"os"
)

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Print Распечатывает версию, дату и комит сборки в stdout.
func Print(version, date, commit string) {
	Fprint(os.Stdout, version, date, commit)
}

// Fprint аналогичен Print, но пишет в w. Пустые значения заменяются на N/A.
func Fprint(w io.Writer, version, date, commit string) {
	_, _ = fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orDefault(version), orDefault(date), orDefault(commit))
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
