package domain

// Message описывает сообщение чата.
// Ключа нет, дубликаты допустимы; коллекция пополняется только добавлением.
type Message struct {
	Email string `json:"email"`
	Texto string `json:"texto"`
	Fecha string `json:"fecha"` // метка времени, заполняется клиентом как есть
}

func NewMessage(email, texto, fecha string) *Message {
	return &Message{
		Email: email,
		Texto: texto,
		Fecha: fecha,
	}
}
