package interfaces

import "ponto_eletronica/internal/domain/entities"

//go:generate mockgen -source=document_renderer_interface.go -destination=../../adapter/http/handlers/mocks/mock_document_renderer.go -package=mocks

// IDocumentRenderer produces the printable document for one service order.
type IDocumentRenderer interface {
	Render(order entities.ServiceOrder) (filename string, content []byte, err error)
}
