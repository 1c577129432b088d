package repository

import "github.com/0DarkSoul/sistema-oficina/internal/domain/entity"

// WorkOrderRepository porta de persistência das ordens de serviço.
// GetByID devolve (nil, nil) quando a OS não existe; quem chama decide se a
// ausência é fatal. Não existe operação de exclusão: estados terminais encerram
// o ciclo de vida.
type WorkOrderRepository interface {
	ListByUser(userID string) ([]*entity.WorkOrder, error)
	GetByID(id string) (*entity.WorkOrder, error)
	Upsert(order *entity.WorkOrder) error
}
