package catalog

import "github.com/emmanuel128/repaso-app/internal/content"

const (
	labelQuestion = "✨ Generar Pregunta"
	labelCase     = "✨ Generar Caso Clínico"
	labelExplain  = "✨ Explícamelo Fácil"
	labelMnemonic = "✨ Crear Mnemotecnia"
)

// studySections is the static study guide, ordered by exam weight.
var studySections = []Section{
	{
		ID:       1,
		Title:    "El Fundamento Ético y Legal",
		Subtitle: "Peso: 15%",
		Weight:   "15%",
		Cards: []Card{
			{
				Title: "Límites de la Confidencialidad",
				Content: "La confidencialidad es un pilar, pero no es absoluta. Se rompe para proteger:\n" +
					"**P**eligro: daño inminente al cliente u otros. **A**buso: sospecha de maltrato (Ley 246).\n" +
					"**R**evelación: con consentimiento escrito. **A**utoridad: por orden de un tribunal.",
			},
			{
				Title: "Leyes Clave de PR",
				Content: "**Ley 408 (Salud Mental):** derechos del paciente y ambiente menos restrictivo.\n" +
					"**Ley 246 (Protección Menores):** reportante mandatorio. **Ley 96:** reglamenta la práctica.",
			},
			{
				Title: "Relaciones Múltiples",
				Content: "Un rol profesional y otro rol personal/social con la misma persona.\n" +
					"Riesgos: pérdida de objetividad, potencial de explotación, daño al proceso terapéutico.",
			},
			{
				Title: "Manejo de Expedientes",
				Content: "Conservación según la Ley 408: adultos 5 años tras la última visita, " +
					"menores hasta los 22 años, casos en litigio hasta que termine el caso.",
			},
		},
		Generators: []Generator{
			{
				Type:    content.TypeQuestion,
				Label:   labelQuestion,
				Section: "Asuntos Éticos, Legales y Profesionales",
				Topics:  "Límites de la confidencialidad, Leyes 408, 246 y 96, Relaciones Múltiples, Competencia profesional, Toma de decisiones éticas.",
			},
			{
				Type:    content.TypeCase,
				Label:   labelCase,
				Section: "Asuntos Éticos, Legales y Profesionales",
				Topics:  "Dilemas de confidencialidad, relaciones duales, o aplicación de leyes de PR en un contexto clínico.",
			},
			{
				Type:    content.TypeExplain,
				Label:   labelExplain,
				Section: "Asuntos Éticos, Legales y Profesionales",
				Topics:  "la diferencia entre confidencialidad y privilegio, el concepto de \"deber de proteger\", y qué es una relación dual.",
			},
		},
	},
	{
		ID:       2,
		Title:    "La Lupa Clínica: Evaluación y Diagnóstico",
		Subtitle: "Peso: 14%",
		Weight:   "14%",
		Cards: []Card{
			{
				Title:   "Psicometría: Validez vs. Confiabilidad",
				Content: "Validez: la prueba mide lo que dice medir. Confiabilidad: mide de forma consistente.",
			},
			{
				Title:   "Instrumentos y Clasificación",
				Content: "Objetivas (MMPI) vs. proyectivas (TAT); uso del DSM-5-TR para el diagnóstico diferencial.",
			},
			{
				Title:   "Trastornos de Personalidad",
				Content: "Clúster A (raros), Clúster B (dramáticos), Clúster C (ansiosos).",
			},
			{
				Title:   "Conceptos Clave",
				Content: "Diagnóstico diferencial, adaptación cultural de pruebas, normas puertorriqueñas.",
			},
		},
		Generators: []Generator{
			{
				Type:    content.TypeQuestion,
				Label:   labelQuestion,
				Section: "Evaluación y Diagnóstico",
				Topics:  "Psicometría (validez, confiabilidad), uso del DSM-5-TR, diagnóstico diferencial, adaptación cultural de pruebas.",
			},
			{
				Type:    content.TypeCase,
				Label:   labelCase,
				Section: "Evaluación y Diagnóstico",
				Topics:  "Presentación de síntomas complejos que requieren un diagnóstico diferencial cuidadoso en un contexto cultural puertorriqueño.",
			},
			{
				Type:    content.TypeExplain,
				Label:   labelExplain,
				Section: "Evaluación y Diagnóstico",
				Topics:  "la diferencia entre una prueba objetiva (como el MMPI) y una proyectiva (como el TAT), y qué es un diagnóstico diferencial.",
			},
		},
	},
	{
		ID:       3,
		Title:    "El Arte de la Intervención",
		Subtitle: "Peso: 14%",
		Weight:   "14%",
		Cards: []Card{
			{
				Title:   "Enfoques Terapéuticos",
				Content: "TCC, humanista, psicodinámico y sistémico; técnicas basadas en evidencia (EPR, DBT).",
			},
			{
				Title:   "Técnica ↔ Trastorno",
				Content: "EPR para TOC, DBT para trastorno límite, activación conductual para depresión.",
			},
			{
				Title:   "Terapia Humanista y Existencial",
				Content: "Aceptación incondicional, empatía y congruencia como condiciones del cambio.",
			},
			{
				Title:   "Niveles de Prevención",
				Content: "Primaria (evitar), secundaria (detectar temprano), terciaria (rehabilitar).",
			},
		},
		Generators: []Generator{
			{
				Type:    content.TypeQuestion,
				Label:   labelQuestion,
				Section: "Tratamiento, Intervención y Prevención",
				Topics:  "Modelos teóricos (TCC, Humanista), técnicas basadas en evidencia (EPR, DBT), niveles de prevención.",
			},
			{
				Type:    content.TypeCase,
				Label:   labelCase,
				Section: "Tratamiento, Intervención y Prevención",
				Topics:  "Un paciente presenta un desafío terapéutico que requiere la selección del enfoque de tratamiento más adecuado.",
			},
			{
				Type:    content.TypeExplain,
				Label:   labelExplain,
				Section: "Tratamiento, Intervención y Prevención",
				Topics:  "los tres niveles de prevención (Primaria, Secundaria, Terciaria).",
			},
		},
	},
	{
		ID:       4,
		Title:    "Bases Cognitivas-Afectivas",
		Subtitle: "Peso: 13%",
		Weight:   "13%",
		Cards: []Card{
			{
				Title:   "Procesos Cognitivos",
				Content: "Memoria (sensorial, corto y largo plazo), lenguaje y toma de decisiones.",
			},
			{
				Title:   "Aprendizaje",
				Content: "Condicionamiento clásico (Pavlov) y operante (Skinner); aprendizaje vicario (Bandura).",
			},
			{
				Title:   "Motivación y Modelos",
				Content: "Disonancia cognitiva, motivación intrínseca vs. extrínseca, jerarquía de Maslow.",
			},
			{
				Title:   "Teorías de la Emoción",
				Content: "James-Lange, Cannon-Bard y la teoría de los dos factores de Schachter-Singer.",
			},
		},
		Generators: []Generator{
			{
				Type:    content.TypeQuestion,
				Label:   labelQuestion,
				Section: "Bases Cognitivas-Afectivas",
				Topics:  "Procesos cognitivos (memoria, lenguaje), teorías de aprendizaje (clásico, operante), motivación (disonancia cognitiva).",
			},
			{
				Type:    content.TypeExplain,
				Label:   labelExplain,
				Section: "Bases Cognitivas-Afectivas",
				Topics:  "la diferencia entre condicionamiento clásico y operante usando un ejemplo de la vida diaria.",
			},
		},
	},
	{
		ID:       5,
		Title:    "Bases Biológicas",
		Subtitle: "Peso: 12%",
		Weight:   "12%",
		Cards: []Card{
			{
				Title:   "Neuroanatomía Funcional",
				Content: "Lóbulos frontal, parietal, temporal y occipital; sistema límbico (amígdala, hipocampo).",
			},
			{
				Title:   "Psicofarmacología Clave",
				Content: "ISRS para depresión/ansiedad, benzodiacepinas de uso corto, estabilizadores del ánimo.",
			},
			{
				Title:   "Neurotransmisores y Trastornos",
				Content: "Serotonina y depresión, dopamina y psicosis, GABA y ansiedad.",
			},
			{
				Title:   "Métodos de Evaluación",
				Content: "EEG, fMRI y PET: qué mide cada uno y cuándo se utiliza.",
			},
		},
		Generators: []Generator{
			{
				Type:    content.TypeQuestion,
				Label:   labelQuestion,
				Section: "Bases Biológicas",
				Topics:  "Neuroanatomía (lóbulos, sistema límbico), psicofarmacología (ISRS, benzos), respuesta al estrés (eje HPA).",
			},
			{
				Type:    content.TypeMnemonic,
				Label:   labelMnemonic,
				Section: "Bases Biológicas",
				Topics:  "los cuatro lóbulos del cerebro (Frontal, Parietal, Temporal, Occipital).",
			},
		},
	},
	{
		ID:       6,
		Title:    "Bases Sociales y Multiculturales",
		Subtitle: "Peso: 12%",
		Weight:   "12%",
		Cards: []Card{
			{
				Title:   "Cognición Social",
				Content: "Error fundamental de atribución, sesgo de autoservicio, efecto halo.",
			},
			{
				Title:   "Influencia Social",
				Content: "Conformidad (Asch), obediencia (Milgram), difusión de responsabilidad.",
			},
			{
				Title:   "Prejuicio y Discrimen",
				Content: "Estereotipos, amenaza del estereotipo y contacto intergrupal como reductor.",
			},
			{
				Title:   "Competencia Multicultural",
				Content: "Conciencia, conocimiento y destrezas culturales aplicadas al contexto puertorriqueño.",
			},
		},
		Generators: []Generator{
			{
				Type:    content.TypeQuestion,
				Label:   labelQuestion,
				Section: "Bases Sociales y Multiculturales",
				Topics:  "Cognición social (error de atribución), dinámica de grupo (conformidad, obediencia), competencia multicultural.",
			},
			{
				Type:    content.TypeExplain,
				Label:   labelExplain,
				Section: "Bases Sociales y Multiculturales",
				Topics:  "el Error Fundamental de Atribución con un ejemplo claro.",
			},
		},
	},
	{
		ID:       7,
		Title:    "Crecimiento y Desarrollo",
		Subtitle: "Peso: 12%",
		Weight:   "12%",
		Cards: []Card{
			{
				Title:   "Desarrollo Cognitivo (Piaget)",
				Content: "Sensoriomotor, preoperacional, operaciones concretas y formales; conservación.",
			},
			{
				Title:   "Desarrollo Psicosocial (Erikson)",
				Content: "Ocho crisis; en la adolescencia: identidad vs. confusión de roles.",
			},
			{
				Title:   "Apego y Crianza",
				Content: "Apego seguro, evitativo y ambivalente (Bowlby, Ainsworth); estilos de crianza.",
			},
			{
				Title:   "Identidad (Marcia)",
				Content: "Logro, moratoria, exclusión y difusión según exploración y compromiso.",
			},
		},
		Generators: []Generator{
			{
				Type:    content.TypeQuestion,
				Label:   labelQuestion,
				Section: "Crecimiento y Desarrollo",
				Topics:  "Teorías de Piaget (conservación), Erikson (identidad vs confusión), y Bowlby (apego seguro).",
			},
			{
				Type:    content.TypeMnemonic,
				Label:   labelMnemonic,
				Section: "Crecimiento y Desarrollo",
				Topics:  "las 4 etapas del desarrollo cognitivo de Piaget.",
			},
		},
	},
	{
		ID:       8,
		Title:    "Métodos de Investigación",
		Subtitle: "Peso: 8%",
		Weight:   "8%",
		Cards: []Card{
			{
				Title:   "Diseños de Investigación",
				Content: "Experimental (causalidad), correlacional (asociación), cuasi-experimental.",
			},
			{
				Title:   "Variables y Validez",
				Content: "Variable independiente vs. dependiente; validez interna vs. externa.",
			},
			{
				Title:   "Estadísticas Paramétricas vs. No Paramétricas",
				Content: "t y ANOVA con supuestos de normalidad; chi-cuadrado para frecuencias.",
			},
			{
				Title:   "Conceptos Estadísticos Clave",
				Content: "Valor p, error tipo I/II, tamaño del efecto y poder estadístico.",
			},
		},
		Generators: []Generator{
			{
				Type:    content.TypeQuestion,
				Label:   labelQuestion,
				Section: "Métodos de Investigación",
				Topics:  "Diseños de investigación (experimental, correlacional), validez (interna, externa), conceptos estadísticos (valor p, error tipo I/II).",
			},
			{
				Type:    content.TypeExplain,
				Label:   labelExplain,
				Section: "Métodos de Investigación",
				Topics:  "la diferencia entre validez interna y validez externa.",
			},
		},
	},
}
