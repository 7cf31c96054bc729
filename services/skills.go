package services

import (
	"regexp"
	"sort"
	"strings"

	"seek-trends/models"
)

// skillPatterns is the skill lexicon tuned for AI / Python engineering roles.
// Each entry is matched case-insensitively against normalized text.
var skillPatterns = map[string]string{
	"python":                 `\bpython\b`,
	"pytorch":                `\bpytorch\b`,
	"tensorflow":             `\btensorflow\b`,
	"keras":                  `\bkeras\b`,
	"scikit-learn":           `\bscikit[- ]learn\b`,
	"pandas":                 `\bpandas\b`,
	"numpy":                  `\bnumpy\b`,
	"sql":                    `\bsql\b`,
	"nosql":                  `\bno[- ]?sql\b`,
	"spark":                  `\bspark\b`,
	"databricks":             `\bdatabricks\b`,
	"aws":                    `\baws\b`,
	"azure":                  `\bazure\b`,
	"gcp":                    `\bgoogle cloud\b|\bgcp\b`,
	"docker":                 `\bdocker\b`,
	"kubernetes":             `\bkubernetes\b`,
	"mlops":                  `\bml[- ]?ops\b`,
	"ci/cd":                  `\bci/?cd\b`,
	"git":                    `\bgit\b`,
	"linux":                  `\blinux\b`,
	"rest api":               `\brest(ful)?\s+api\b`,
	"grpc":                   `\bgrpc\b`,
	"microservices":          `\bmicro-?services\b`,
	"nlp":                    `\bnatural language processing\b|\bnlp\b`,
	"computer vision":        `\bcomputer vision\b`,
	"reinforcement learning": `\breinforcement learning\b`,
	"machine learning":       `\bmachine learning\b`,
	"deep learning":          `\bdeep learning\b`,
	"generative ai":          `\bgenerative ai\b`,
	"llm":                    `\bllms?\b|\blarge language model\b`,
	"rag":                    `\brag\b|\bretrieval[- ]augmented\b`,
	"prompt engineering":     `\bprompt engineering\b`,
	"statistics":             `\bstatistics?\b`,
	"probability":            `\bprobabilit(y|ies)\b`,
	"linear algebra":         `\blinear algebra\b`,
	"agile":                  `\bagile\b`,
	"jira":                   `\bjira\b`,
	"power bi":               `\bpower bi\b`,
	"tableau":                `\btableau\b`,
	"snowflake":              `\bsnowflake\b`,
	"bigquery":               `\bbigquery\b`,
	"airflow":                `\bairflow\b`,
	"sql server":             `\bsql server\b`,
	"postgresql":             `\bpostgres(ql)?\b`,
	"mongodb":                `\bmongodb\b`,
}

// Lexicon maps a skill label to its compiled matching pattern. Built once at
// startup and immutable thereafter.
type Lexicon map[string]*regexp.Regexp

// DefaultLexicon compiles the built-in skill patterns.
func DefaultLexicon() Lexicon {
	lex := make(Lexicon, len(skillPatterns))
	for label, pattern := range skillPatterns {
		lex[label] = regexp.MustCompile(`(?i)` + pattern)
	}
	return lex
}

// Normalize lower-cases text and collapses all whitespace runs (including
// newlines) to single spaces, so patterns need not account for casing or
// line breaks. Idempotent.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// ExtractSkills returns the set of skill labels whose pattern matches the
// normalized text at least once. Repeated occurrences within one document do
// not count extra.
func ExtractSkills(lex Lexicon, text string) map[string]struct{} {
	normalized := Normalize(text)
	hits := make(map[string]struct{})
	for label, pattern := range lex {
		if pattern.MatchString(normalized) {
			hits[label] = struct{}{}
		}
	}
	return hits
}

// ComputeSkillFrequencies counts, per label, the number of distinct records
// whose description matched at least once. Records without a description are
// ignored.
func ComputeSkillFrequencies(lex Lexicon, records []*models.JobRecord) models.SkillFrequencies {
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.Description == "" {
			continue
		}
		for label := range ExtractSkills(lex, rec.Description) {
			counts[label]++
		}
	}
	return SortSkillCounts(counts)
}

// SortSkillCounts orders counts by descending frequency, ties broken by
// ascending label. Callers may rely on this ordering.
func SortSkillCounts(counts map[string]int) models.SkillFrequencies {
	out := make(models.SkillFrequencies, 0, len(counts))
	for label, count := range counts {
		out = append(out, models.SkillCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
