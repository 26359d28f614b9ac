package storefront

import (
	"fmt"
	"sync"
)

// LoginMethod — косметический режим формы входа.
type LoginMethod string

const (
	LoginMethodPhone LoginMethod = "phone"
	LoginMethodEmail LoginMethod = "email"
)

// Провайдеры имитируемого входа. Все пять кнопок формы ведут к одному и
// тому же результату.
const (
	ProviderSystem = "系统账号"
	ProviderPhone  = "手机号"
	ProviderEmail  = "邮箱"
	ProviderGoogle = "Google"
	ProviderGitHub = "GitHub"
)

// LoginView — страница входа. Переключение phone/email меняет только
// внешний вид; любой способ входа пишет один и тот же флаг и имя.
type LoginView struct {
	shell *Shell

	mu     sync.Mutex
	method LoginMethod
}

// NewLoginView создаёт экран входа в режиме телефона.
func NewLoginView(shell *Shell) *LoginView {
	return &LoginView{shell: shell, method: LoginMethodPhone}
}

// Method возвращает текущий режим формы.
func (v *LoginView) Method() LoginMethod {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.method
}

// SetMethod переключает режим формы.
func (v *LoginView) SetMethod(method LoginMethod) {
	v.mu.Lock()
	v.method = method
	v.mu.Unlock()
}

// SimulateLogin выполняет имитируемый вход через указанного провайдера
// и возвращает текст подтверждающего сообщения.
func (v *LoginView) SimulateLogin(provider string) (string, error) {
	if err := v.shell.Login(provider); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ 模拟 %s 登录成功！欢迎回来。", provider), nil
}
