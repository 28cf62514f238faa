package i18n

type Language string

const (
	English Language = "en"
	Italian Language = "it"
)

var currentLang = English

type Messages struct {
	// General
	Error         string
	Notes         string
	Archived      string
	Uncategorized string
	Help          string
	Exit          string

	// Auth
	LoginTitle     string
	SignupTitle    string
	EmailLabel     string
	PasswordLabel  string
	LoginAction    string
	SignupAction   string
	SwitchToSignup string
	SwitchToLogin  string
	LoggedInAs     string

	// List / metadata
	NoNotes        string
	NoNoteSelected string
	Tags           string
	Category       string
	CreatedAt      string
	ModifiedAt     string
	Location       string

	// Editor / dialogs
	NewNote          string
	TitleRequired    string
	TitlePlaceholder string
	NotePlaceholder  string
	TagsPlaceholder  string
	DraftRestored    string
	DeleteConfirm    string
	EnterConfirm     string
	EscCancel        string
	Search           string

	// Import dialog
	ImportTitle       string
	ImportPlaceholder string
	DuplicatesSkip    string
	DuplicatesReplace string
	ToggleDuplicates  string

	// Settings
	Settings        string
	ColorTheme      string
	FontTheme       string
	ChangePassword  string
	CurrentPassword string
	NewPassword     string
	PasswordChanged string

	// Status line
	Exported       string
	ShareCopied    string
	Saved          string
	ImportResult   string
	ImportRejected string

	// Key hints
	KeyUp       string
	KeyDown     string
	KeyOpen     string
	KeyEdit     string
	KeyEscape   string
	KeySave     string
	KeyNew      string
	KeyDelete   string
	KeySearch   string
	KeyArchive  string
	KeyExport   string
	KeyImport   string
	KeyShare    string
	KeyCategory string
	KeySettings string
	KeyLogout   string
	KeyQuit     string
	KeyHelp     string
}

var english = Messages{
	Error:         "Error",
	Notes:         "Notes",
	Archived:      "Archived",
	Uncategorized: "Uncategorized",
	Help:          "Help",
	Exit:          "Exit",

	LoginTitle:     "Log in",
	SignupTitle:    "Sign up",
	EmailLabel:     "Email",
	PasswordLabel:  "Password",
	LoginAction:    "Press Enter to log in",
	SignupAction:   "Press Enter to create your account",
	SwitchToSignup: "Ctrl+T: switch to sign up",
	SwitchToLogin:  "Ctrl+T: switch to log in",
	LoggedInAs:     "Logged in as",

	NoNotes:        "No notes yet. Press Ctrl+N to create one.",
	NoNoteSelected: "No note selected",
	Tags:           "Tags",
	Category:       "Category",
	CreatedAt:      "Created",
	ModifiedAt:     "Modified",
	Location:       "Location",

	NewNote:          "New note",
	TitleRequired:    "a title is required",
	TitlePlaceholder: "Title...",
	NotePlaceholder:  "Write your note...",
	TagsPlaceholder:  "tags, comma, separated",
	DraftRestored:    "Draft restored",
	DeleteConfirm:    "Delete this note?",
	EnterConfirm:     "Enter: confirm",
	EscCancel:        "Esc: cancel",
	Search:           "Search",

	ImportTitle:       "Import notes",
	ImportPlaceholder: "path/to/notes-export.json",
	DuplicatesSkip:    "Duplicates: skip",
	DuplicatesReplace: "Duplicates: replace",
	ToggleDuplicates:  "Ctrl+T: toggle duplicates",

	Settings:        "Settings",
	ColorTheme:      "Color theme",
	FontTheme:       "Font theme",
	ChangePassword:  "Change password",
	CurrentPassword: "Current password",
	NewPassword:     "New password",
	PasswordChanged: "Password changed",

	Exported:       "Exported to",
	ShareCopied:    "Share link copied",
	Saved:          "Saved",
	ImportResult:   "Imported %d notes, skipped %d",
	ImportRejected: "%d records rejected",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyOpen:     "open",
	KeyEdit:     "edit",
	KeyEscape:   "back",
	KeySave:     "save",
	KeyNew:      "new note",
	KeyDelete:   "delete",
	KeySearch:   "search",
	KeyArchive:  "archive",
	KeyExport:   "export",
	KeyImport:   "import",
	KeyShare:    "share",
	KeyCategory: "category",
	KeySettings: "settings",
	KeyLogout:   "log out",
	KeyQuit:     "quit",
	KeyHelp:     "help",
}

var italian = Messages{
	Error:         "Errore",
	Notes:         "Note",
	Archived:      "Archiviate",
	Uncategorized: "Senza categoria",
	Help:          "Aiuto",
	Exit:          "Esci",

	LoginTitle:     "Accedi",
	SignupTitle:    "Registrati",
	EmailLabel:     "Email",
	PasswordLabel:  "Password",
	LoginAction:    "Premi Invio per accedere",
	SignupAction:   "Premi Invio per creare l'account",
	SwitchToSignup: "Ctrl+T: passa a registrazione",
	SwitchToLogin:  "Ctrl+T: passa ad accesso",
	LoggedInAs:     "Connesso come",

	NoNotes:        "Nessuna nota. Premi Ctrl+N per crearne una.",
	NoNoteSelected: "Nessuna nota selezionata",
	Tags:           "Tag",
	Category:       "Categoria",
	CreatedAt:      "Creata",
	ModifiedAt:     "Modificata",
	Location:       "Posizione",

	NewNote:          "Nuova nota",
	TitleRequired:    "il titolo è obbligatorio",
	TitlePlaceholder: "Titolo...",
	NotePlaceholder:  "Scrivi la tua nota...",
	TagsPlaceholder:  "tag, separati, da virgole",
	DraftRestored:    "Bozza ripristinata",
	DeleteConfirm:    "Eliminare questa nota?",
	EnterConfirm:     "Invio: conferma",
	EscCancel:        "Esc: annulla",
	Search:           "Cerca",

	ImportTitle:       "Importa note",
	ImportPlaceholder: "percorso/notes-export.json",
	DuplicatesSkip:    "Duplicati: salta",
	DuplicatesReplace: "Duplicati: sostituisci",
	ToggleDuplicates:  "Ctrl+T: cambia gestione duplicati",

	Settings:        "Impostazioni",
	ColorTheme:      "Tema colori",
	FontTheme:       "Tema caratteri",
	ChangePassword:  "Cambia password",
	CurrentPassword: "Password attuale",
	NewPassword:     "Nuova password",
	PasswordChanged: "Password cambiata",

	Exported:       "Esportato in",
	ShareCopied:    "Link di condivisione copiato",
	Saved:          "Salvato",
	ImportResult:   "Importate %d note, %d saltate",
	ImportRejected: "%d record rifiutati",

	KeyUp:       "su",
	KeyDown:     "giù",
	KeyOpen:     "apri",
	KeyEdit:     "modifica",
	KeyEscape:   "indietro",
	KeySave:     "salva",
	KeyNew:      "nuova nota",
	KeyDelete:   "elimina",
	KeySearch:   "cerca",
	KeyArchive:  "archivia",
	KeyExport:   "esporta",
	KeyImport:   "importa",
	KeyShare:    "condividi",
	KeyCategory: "categoria",
	KeySettings: "impostazioni",
	KeyLogout:   "disconnetti",
	KeyQuit:     "esci",
	KeyHelp:     "aiuto",
}

func SetLanguage(lang Language) {
	currentLang = lang
}

func T() Messages {
	if currentLang == Italian {
		return italian
	}
	return english
}
