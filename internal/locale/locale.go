// Package locale holds the English and Spanish UI strings.
package locale

import "github.com/akyairhashvil/taskboard/internal/models"

type Labels struct {
	Code          string
	BoardTitle    string
	TableTitle    string
	ReportTitle   string
	Statuses      map[models.TaskStatus]string
	Priorities    map[models.Priority]string
	Unassigned    string
	Title         string
	Assignee      string
	Project       string
	Priority      string
	Status        string
	Due           string
	Estimated     string
	TimeSpent     string
	Running       string
	Paused        string
	Total         string
	Completion    string
	ActiveTimers  string
	NewTaskTitle  string
	EditTitle     string
	ConfirmDelete string
	ReportSaved   string
	Dragging      string
	EmptyColumn   string
}

var English = Labels{
	Code:        "en",
	BoardTitle:  "Task board",
	TableTitle:  "Tasks",
	ReportTitle: "Time report",
	Statuses: map[models.TaskStatus]string{
		models.StatusPending:    "Pending",
		models.StatusInProgress: "In progress",
		models.StatusInReview:   "In review",
		models.StatusCompleted:  "Completed",
	},
	Priorities: map[models.Priority]string{
		models.PriorityLow:    "Low",
		models.PriorityMedium: "Medium",
		models.PriorityHigh:   "High",
		models.PriorityUrgent: "Urgent",
	},
	Unassigned:    "Unassigned",
	Title:         "Title",
	Assignee:      "Assignee",
	Project:       "Project",
	Priority:      "Priority",
	Status:        "Status",
	Due:           "Due",
	Estimated:     "Estimated",
	TimeSpent:     "Time spent",
	Running:       "running",
	Paused:        "paused",
	Total:         "Total",
	Completion:    "Completion",
	ActiveTimers:  "Active timers",
	NewTaskTitle:  "New task title",
	EditTitle:     "Edit title",
	ConfirmDelete: "Delete %q? (y/n)",
	ReportSaved:   "Report saved to %s",
	Dragging:      "Moving %q",
	EmptyColumn:   "No tasks",
}

var Spanish = Labels{
	Code:        "es",
	BoardTitle:  "Tablero de tareas",
	TableTitle:  "Tareas",
	ReportTitle: "Informe de tiempo",
	Statuses: map[models.TaskStatus]string{
		models.StatusPending:    "Pendiente",
		models.StatusInProgress: "En progreso",
		models.StatusInReview:   "Revisión",
		models.StatusCompleted:  "Completada",
	},
	Priorities: map[models.Priority]string{
		models.PriorityLow:    "Baja",
		models.PriorityMedium: "Media",
		models.PriorityHigh:   "Alta",
		models.PriorityUrgent: "Urgente",
	},
	Unassigned:    "Sin asignar",
	Title:         "Título",
	Assignee:      "Responsable",
	Project:       "Proyecto",
	Priority:      "Prioridad",
	Status:        "Estado",
	Due:           "Vence",
	Estimated:     "Estimado",
	TimeSpent:     "Tiempo",
	Running:       "en curso",
	Paused:        "en pausa",
	Total:         "Total",
	Completion:    "Finalización",
	ActiveTimers:  "Temporizadores activos",
	NewTaskTitle:  "Título de la nueva tarea",
	EditTitle:     "Editar título",
	ConfirmDelete: "¿Eliminar %q? (y/n)",
	ReportSaved:   "Informe guardado en %s",
	Dragging:      "Moviendo %q",
	EmptyColumn:   "Sin tareas",
}

// For returns the labels for a locale code, falling back to English.
func For(code string) Labels {
	if code == Spanish.Code {
		return Spanish
	}
	return English
}

// Toggle switches between the two locales.
func (l Labels) Toggle() Labels {
	if l.Code == Spanish.Code {
		return English
	}
	return Spanish
}

func (l Labels) StatusName(s models.TaskStatus) string {
	if name, ok := l.Statuses[s]; ok {
		return name
	}
	return string(s)
}

func (l Labels) PriorityName(p models.Priority) string {
	if name, ok := l.Priorities[p]; ok {
		return name
	}
	return string(p)
}
