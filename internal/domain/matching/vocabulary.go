package matching

// Static reference tables. All of them are read-only and versioned with the
// engine; extending a table does not change any scoring contract.

// skillVocabulary lists the known skill/technology/domain terms the extractor
// tests for substring containment in normalized text. The board serves
// security-sector postings too, hence the SIEM/pentesting tools and
// compliance standards at the end.
var skillVocabulary = []string{
	"python",
	"java",
	"javascript",
	"typescript",
	"nodejs",
	"react",
	"angular",
	"vue",
	"fastapi",
	"django",
	"flask",
	"spring",
	"docker",
	"kubernetes",
	"aws",
	"azure",
	"gcp",
	"git",
	"sql",
	"postgresql",
	"mysql",
	"mongodb",
	"redis",
	"elasticsearch",
	"linux",
	"windows",
	"ci cd",
	"devops",
	"agile",
	"scrum",
	"rest api",
	"graphql",
	"microservices",
	"machine learning",
	"data science",
	"cybersecurity",
	"pentesting",
	"siem",
	"qradar",
	"wireshark",
	"nmap",
	"nessus",
	"iso 27001",
	"lgpd",
	"gdpr",
	"firewall",
	"vpn",
	"criptografia",
	"forense digital",
}

// levelSynonyms maps canonical seniority levels to the tokens that count as a
// claim of that level in resume text. The board carries pt-BR postings, so
// regional variants are included.
var levelSynonyms = map[string][]string{
	"junior": {"junior", "júnior", "estagiário", "estagiario", "trainee"},
	"pleno":  {"pleno", "mid", "middle", "intermediário", "intermediario"},
	"senior": {"senior", "sênior", "especialista", "líder", "lider", "lead"},
}

// supervisoryTokens trigger the partial-credit level override when the
// primary synonym match fails for a senior/pleno opening.
var supervisoryTokens = []string{"supervisor", "coordenador"}

// experienceKeywords each add a +0.1 bonus to the experience score when
// present in resume text.
var experienceKeywords = []string{"experiência", "experience", "atuação", "trabalho"}

// educationRanks maps education-level terms to an integer tier. Higher is
// more advanced: técnico(1) < graduação(2) < pós/especialização(3) <
// mestrado(4) < doutorado(5).
var educationRanks = map[string]int{
	"doutorado":      5,
	"phd":            5,
	"mestrado":       4,
	"mestre":         4,
	"pós-graduação":  3,
	"pós-graduacao":  3,
	"especialização": 3,
	"especializacao": 3,
	"graduação":      2,
	"graduacao":      2,
	"tecnólogo":      2,
	"tecnologo":      2,
	"bacharelado":    2,
	"técnico":        1,
	"tecnico":        1,
}
