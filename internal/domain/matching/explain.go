package matching

import (
	"fmt"
	"strings"
)

// Explanation rules. Evaluated in fixed order; each either appends a
// templated message or is skipped, with a single fallback when nothing fired.
// Messages are in pt-BR, matching the board's audience.

func buildRecommendations(missing []string, skillsScore, experienceScore, levelScore float64) []string {
	recommendations := make([]string, 0, 3)

	if skillsScore < 0.6 && len(missing) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Recomenda-se desenvolver as seguintes habilidades: %s", joinTop(missing, 3)))
	}

	if experienceScore < 0.6 {
		recommendations = append(recommendations,
			"Buscar projetos ou experiências adicionais para fortalecer o perfil")
	}

	if levelScore < 0.6 {
		recommendations = append(recommendations,
			"Destacar experiências de liderança e responsabilidades no currículo")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Perfil muito bem alinhado com a vaga. Continue aprimorando suas habilidades!")
	}

	return recommendations
}

func identifyStrengths(matched []string, skillsScore, experienceScore float64) []string {
	strengths := make([]string, 0, 3)

	if skillsScore >= 0.7 {
		strengths = append(strengths,
			fmt.Sprintf("Forte alinhamento de habilidades técnicas (%d skills compatíveis)", len(matched)))
	}

	if experienceScore >= 0.7 {
		strengths = append(strengths, "Experiência profissional adequada para a vaga")
	}

	if len(matched) > 0 {
		strengths = append(strengths, fmt.Sprintf("Domínio em: %s", joinTop(matched, 3)))
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Perfil em desenvolvimento")
	}

	return strengths
}

func identifyWeaknesses(missing []string, skillsScore, experienceScore float64) []string {
	weaknesses := make([]string, 0, 2)

	if skillsScore < 0.5 && len(missing) > 0 {
		weaknesses = append(weaknesses,
			fmt.Sprintf("Gap de habilidades: %s", joinTop(missing, 3)))
	}

	if experienceScore < 0.5 {
		weaknesses = append(weaknesses, "Experiência profissional abaixo do esperado")
	}

	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "Nenhuma fraqueza significativa identificada")
	}

	return weaknesses
}

func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
