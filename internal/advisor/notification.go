package advisor

// NoticeKind is the severity of a Notification.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notification is a transient toast. ID increases with every notification
// so an expiry armed for an older toast cannot dismiss a newer one.
type Notification struct {
	ID   uint64
	Kind NoticeKind
	Text string
}

// Notification texts.
const (
	NoticeReplied       = "✅ Agente respondió correctamente"
	NoticeFailed        = "❌ Error de comunicación con el agente"
	NoticeListening     = "Escuchando... ¡Pregúntame sobre productos!"
	NoticeCaptured      = "Pregunta capturada por voz"
	NoticeNotCaptured   = "No se pudo capturar la pregunta por voz"
	NoticeBusy          = "Espera la respuesta del agente antes de enviar otra pregunta"
	NoticeAddedToCart   = "Producto agregado al carrito"
	NoticeAddedFavorite = "Producto agregado a favoritos"
)
