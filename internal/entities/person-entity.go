package entities

import "github.com/aarondl/null/v8"

// PositionAssignment — факт занятия должности в некоторый период.
// Живёт внутри Person, отдельной коллекции у назначений нет.
//
// Инвариант is_current == (end_date отсутствует) хранилищем не
// проверяется: вызывающий обязан выставлять оба поля согласованно.
type PositionAssignment struct {
	PositionID string      `json:"position_id"`
	StartDate  null.String `json:"start_date"`
	EndDate    null.String `json:"end_date"`
	IsCurrent  bool        `json:"is_current"`
}

// Person — чиновник с историей назначений. Назначения добавляются в
// конец; при уходе с должности запись закрывается на месте.
type Person struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Positions []PositionAssignment `json:"positions"`
	CreatedAt string               `json:"created_at"`
}

func NewPerson(id, name string) Person {
	return Person{
		ID:        id,
		Name:      name,
		Positions: []PositionAssignment{},
		CreatedAt: NowTimestamp(),
	}
}

// CurrentPosition возвращает текущее назначение. Модель допускает
// несколько записей с is_current=true (человек может занимать больше
// одной должности); возвращается первая по порядку добавления —
// этот выбор детерминирован и закреплён тестами. nil — назначений нет.
func (p *Person) CurrentPosition() *PositionAssignment {
	for i := range p.Positions {
		if p.Positions[i].IsCurrent {
			return &p.Positions[i]
		}
	}
	return nil
}

// AddAssignment добавляет назначение. is_current выводится из end_date:
// открытый период — текущая должность.
func (p *Person) AddAssignment(positionID string, startDate, endDate null.String) {
	p.Positions = append(p.Positions, PositionAssignment{
		PositionID: positionID,
		StartDate:  startDate,
		EndDate:    endDate,
		IsCurrent:  !endDate.Valid,
	})
}
