package keylock

import "sync"

// KeyLock - реестр мьютексов по ключу. Сериализует все мутации
// одного аккаунта, операции над разными аккаунтами идут параллельно
type KeyLock struct {
	locks sync.Map // int -> *sync.Mutex
}

func New() *KeyLock {
	return &KeyLock{}
}

// Lock захватывает мьютекс ключа и возвращает функцию освобождения
func (k *KeyLock) Lock(key int) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mtx := v.(*sync.Mutex)
	mtx.Lock()
	return mtx.Unlock
}
