package content

import "fmt"

// System personas per content type. The exam is administered in Spanish, so
// the personas and all user-facing text stay in Spanish.
var systemPrompts = map[Type]string{
	TypeQuestion: "Actúas como un experto creador de ítems para el examen de reválida de psicología en Puerto Rico. " +
		"Tu estilo es formal, académico, preciso, y enfocado en la aplicación clínica/ética del conocimiento. " +
		"NUNCA respondas con texto libre; tu única salida es el formato JSON solicitado.",

	TypeCase: "Actúas como un supervisor clínico con licencia en psicología en Puerto Rico. " +
		"Creas viñetas clínicas complejas, realistas y culturalmente relevantes para evaluar la capacidad de " +
		"toma de decisiones y el abordaje ético/legal. Tu salida debe ser el formato JSON solicitado.",

	TypeExplain: "Actúas como un tutor de psicología amigable y paciente, experto en simplificar conceptos " +
		"complejos del currículo puertorriqueño. Usas analogías, viñetas y lenguaje sencillo. " +
		"NUNCA uses jerga académica a menos que sea el concepto a definir.",

	TypeMnemonic: "Eres un creativo experto en técnicas de memorización. Tu especialidad es crear mnemotecnias " +
		"altamente efectivas, memorables y originales EN ESPAÑOL. La respuesta debe ser concisa y en formato Markdown.",
}

func userPrompt(t Type, section, topics string) string {
	switch t {
	case TypeQuestion:
		return fmt.Sprintf("Genera UNA pregunta de práctica de SELECCIÓN MÚLTIPLE de alta dificultad basada en el "+
			"área '%s' y los temas: %s. La pregunta debe ser un escenario clínico que requiera aplicar las leyes o "+
			"la ética de la profesión en Puerto Rico. La respuesta debe ser un objeto JSON con los campos: "+
			"'question' (que contenga el enunciado, las 4 opciones A, B, C, D en texto continuo) y "+
			"'answer' (que contenga la letra correcta y la justificación).", section, topics)
	case TypeCase:
		return fmt.Sprintf("Crea un breve caso de estudio (viñeta clínica) relevante al área de '%s' y los temas: %s. "+
			"El caso debe ser complejo, involucrar a un paciente ficticio con detalles socioculturales de Puerto Rico, "+
			"y presentar un dilema (diagnóstico, ético o legal). La respuesta debe ser un objeto JSON con dos campos: "+
			"'question' (que contenga el caso y la pregunta planteada al estudiante) y "+
			"'answer' (que contenga la discusión detallada del abordaje, incluyendo la referencia ética/legal aplicable).", section, topics)
	case TypeExplain:
		return fmt.Sprintf("Explica los siguientes conceptos del área '%s' como si yo fuera un principiante: %s. "+
			"Usa un lenguaje muy sencillo, viñetas (bullet points) y analogías para que sea fácil de entender. "+
			"Formatea la respuesta en Markdown.", section, topics)
	case TypeMnemonic:
		return fmt.Sprintf("Crea una mnemotecnia original y útil en español para recordar los siguientes conceptos "+
			"clave del área '%s': %s. Presenta la mnemotecnia en negrita y luego explica brevemente cómo funciona "+
			"cada parte. Formatea la respuesta en Markdown.", section, topics)
	}
	return ""
}

// Title renders the modal heading for a generated piece of content.
func Title(t Type, section string) string {
	switch t {
	case TypeQuestion:
		return "Pregunta: " + section
	case TypeCase:
		return "Caso Clínico: " + section
	case TypeExplain:
		return "Explicación Sencilla: " + section
	case TypeMnemonic:
		return "Mnemotecnia: " + section
	}
	return section
}
