package textextract

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var ErrUnsupportedFormat = errors.New("формат файла не поддерживается, загрузите txt или md")

// ExtractText возвращает текст резюме из загруженного файла.
// Бинарные форматы (pdf, docx) сюда не попадают, клиент извлекает
// текст на своей стороне
func ExtractText(fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".txt", ".md", "":
		if !utf8.Valid(data) {
			return "", errors.New("файл не является текстом в кодировке UTF-8")
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "расширение %s", ext)
	}
}
