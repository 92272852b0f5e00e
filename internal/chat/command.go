package chat

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"clarityflow/internal/domain"
)

// Command adalah hasil klasifikasi satu baris teks chat bergrammar
// `@<action>-<type>[ <free text>]`. Teks yang tidak cocok dengan grammar
// bukan error: diperlakukan sebagai pertanyaan bebas (Classify mengembalikan
// nil).
type Command struct {
	Action string
	Type   string
	Fields map[string]any
}

var commandPattern = regexp.MustCompile(`^@(\w+)-(\w+)\s*(.*)$`)

var knownActions = map[string]bool{
	"create": true,
	"update": true,
	"delete": true,
	"read":   true,
}

var knownTypes = map[string]bool{
	"task":        true,
	"appointment": true,
	"employee":    true,
	"sale":        true,
}

// extractionRule adalah satu entri grammar deklaratif per resource type:
// pattern terhadap sisa teks plus pemetaan capture group ke field.
// Ekstraksi best-effort: sisa teks yang tidak cocok menghasilkan field
// kosong, bukan error; mutator hilir yang memvalidasi.
type extractionRule struct {
	pattern *regexp.Regexp
	build   func(match []string, now time.Time) map[string]any
}

var extractionRules = map[string]extractionRule{
	"task": {
		pattern: regexp.MustCompile(`"([^"]+)"\s+for\s+(\w+)`),
		build: func(match []string, now time.Time) map[string]any {
			return map[string]any{
				"title":      match[1],
				"department": canonicalDepartment(match[2]),
				"status":     string(domain.TaskStatusToDo),
				"dueDate":    now.AddDate(0, 0, 7).Format("2006-01-02"),
			}
		},
	},
	"appointment": {
		pattern: regexp.MustCompile(`"([^"]+)"\s+at\s+(.+)`),
		build: func(match []string, now time.Time) map[string]any {
			start, ok := parseStartTime(match[2])
			if !ok {
				return map[string]any{}
			}
			return map[string]any{
				"title":     match[1],
				"startTime": start.Format(time.RFC3339),
				"endTime":   start.Add(time.Hour).Format(time.RFC3339),
				"clientIds": []string{},
				"userIds":   []string{},
			}
		},
	},
	"employee": {
		pattern: regexp.MustCompile(`"([^"]+)"\s+(\S+)\s+(\w+)`),
		build: func(match []string, now time.Time) map[string]any {
			return map[string]any{
				"name":       match[1],
				"email":      match[2],
				"department": canonicalDepartment(match[3]),
				"role":       string(domain.RoleEmployee),
			}
		},
	},
	"sale": {
		pattern: regexp.MustCompile(`"([^"]+)"\s+(\d+(?:\.\d+)?)`),
		build: func(match []string, now time.Time) map[string]any {
			value, err := strconv.ParseFloat(match[2], 64)
			if err != nil {
				return map[string]any{}
			}
			return map[string]any{
				"title":  match[1],
				"value":  value,
				"status": string(domain.SaleStatusPending),
			}
		},
	},
}

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseStartTime(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// canonicalDepartment menyamakan kapitalisasi token department dengan enum
// ("engineering" -> "Engineering"). Token yang tetap tidak dikenal dibiarkan
// apa adanya; validasi mutator yang menolaknya.
func canonicalDepartment(token string) string {
	for _, d := range domain.Departments {
		if strings.EqualFold(string(d), token) {
			return string(d)
		}
	}
	return token
}

// Classify murni lokal dan sinkron: tidak menyentuh storage maupun network.
// Klasifikasi deterministik kecuali field tanggal relatif (dueDate) yang
// dihitung dari jam sekarang.
func Classify(text string) *Command {
	return classifyAt(text, time.Now())
}

func classifyAt(text string, now time.Time) *Command {
	match := commandPattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	action, typ, params := match[1], match[2], match[3]
	if !knownActions[action] || !knownTypes[typ] {
		return nil
	}

	if action == "read" {
		return &Command{Action: action, Type: typ, Fields: map[string]any{}}
	}

	fields := map[string]any{}
	rule := extractionRules[typ]
	if m := rule.pattern.FindStringSubmatch(params); m != nil {
		fields = rule.build(m, now)
	}

	return &Command{Action: action, Type: typ, Fields: fields}
}
