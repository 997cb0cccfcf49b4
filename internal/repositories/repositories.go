// Пакет repositories — доступ к коллекциям трекера поверх JSON-хранилища.
// Каждая операция записи читает коллекцию целиком, меняет её в памяти и
// перезаписывает документ; точечных обновлений на диске нет. Чтение и
// последующая запись — отдельные блокируемые операции, поэтому между ними
// возможна гонка "последний пишущий побеждает". Для редакторов в несколько
// человек это принятое ограничение.
package repositories

import (
	"fmt"
	"strconv"
	"strings"
)

// nextID ищет максимальный числовой суффикс среди id с данным префиксом
// и возвращает следующий с дополнением нулями: "pos_007" -> "pos_008".
// Чужие и испорченные id (нечисловой суффикс) пропускаются.
func nextID(prefix string, ids []string) string {
	maxNum := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix+"_") {
			continue
		}
		parts := strings.Split(id, "_")
		num, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		if num > maxNum {
			maxNum = num
		}
	}
	return fmt.Sprintf("%s_%03d", prefix, maxNum+1)
}
