package usecase

import (
	"fmt"
	"strings"
	"time"

	"personal-agenda/pkg/datemath"
)

// weekdayAnchors is the order weekday dates are listed in the prompt.
var weekdayAnchors = []string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}

// buildTaskPrompt constructs the instruction prompt for one phrase. All
// relative expressions are pre-resolved to literal dates here so the model
// never has to do calendar arithmetic itself.
func buildTaskPrompt(phrase string, today time.Time) string {
	var sb strings.Builder

	sb.WriteString("Eres un asistente que convierte frases informales en tareas de agenda.\n")
	sb.WriteString("Extrae UNA tarea de la frase del usuario y responde SOLO con un objeto JSON.\n\n")

	for _, anchor := range []struct {
		label  string
		phrase string
	}{
		{"Fecha de hoy: %s\n", "hoy"},
		{"\"mañana\" es %s\n", "mañana"},
		{"\"pasado mañana\" es %s\n", "pasado mañana"},
	} {
		if d, ok := datemath.Resolve(anchor.phrase, today); ok {
			sb.WriteString(fmt.Sprintf(anchor.label, d.Format("2006-01-02")))
		}
	}
	for _, name := range weekdayAnchors {
		next, err := datemath.NextWeekday(name, today)
		if err != nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("el próximo %s es %s\n", name, next.Format("2006-01-02")))
	}

	sb.WriteString("\nEl JSON debe tener exactamente estas cinco claves:\n")
	sb.WriteString(`{"title": "...", "date": "YYYY-MM-DD", "hour": "HH:MM", "endHour": "HH:MM", "category": "..."}` + "\n\n")

	sb.WriteString("Reglas:\n")
	sb.WriteString("- \"date\" debe ser una fecha literal YYYY-MM-DD tomada de la lista de arriba o de la frase. Nunca escribas instrucciones, corchetes ni marcadores de posición: solo valores literales.\n")
	sb.WriteString("- \"hour\" y \"endHour\" en formato 24 horas HH:MM. Si la frase no menciona hora de fin, usa una hora después del inicio.\n")
	sb.WriteString("- \"category\" debe ser una de: Personal, Trabajo, Estudio, Hogar, Salud, Otro.\n")
	sb.WriteString("- No agregues texto fuera del objeto JSON.\n\n")

	sb.WriteString("Ejemplo:\n")
	sb.WriteString("Frase: \"turno con el dentista mañana a las 10\"\n")
	manana, _ := datemath.Resolve("mañana", today)
	example := fmt.Sprintf(
		`{"title": "Turno con el dentista", "date": "%s", "hour": "10:00", "endHour": "11:00", "category": "Salud"}`,
		manana.Format("2006-01-02"),
	)
	sb.WriteString("Respuesta: " + example + "\n\n")

	sb.WriteString(fmt.Sprintf("Frase: %q\n", phrase))
	sb.WriteString("Respuesta:")

	return sb.String()
}
