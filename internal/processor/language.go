package processor

import (
	"strings"

	"github.com/RadhiFadlillah/whatlanggo"
)

var langCodes = map[whatlanggo.Lang]string{
	whatlanggo.Eng: "en",
	whatlanggo.Spa: "es",
	whatlanggo.Fra: "fr",
	whatlanggo.Deu: "de",
	whatlanggo.Por: "pt",
	whatlanggo.Ita: "it",
	whatlanggo.Nld: "nl",
	whatlanggo.Rus: "ru",
	whatlanggo.Ukr: "uk",
	whatlanggo.Pol: "pl",
	whatlanggo.Tur: "tr",
	whatlanggo.Vie: "vi",
	whatlanggo.Hin: "hi",
	whatlanggo.Jpn: "ja",
	whatlanggo.Kor: "ko",
	whatlanggo.Cmn: "zh",
}

// DetectLanguage guesses the ISO 639-1 code of text, falling back to the
// ISO 639-3 code for languages outside the mapping table. Used when the
// caller supplies no language, so stop-word filtering still applies to
// recognizably English transcripts.
func DetectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	info := whatlanggo.Detect(text)
	if code, ok := langCodes[info.Lang]; ok {
		return code
	}
	return whatlanggo.LangToString(info.Lang)
}
