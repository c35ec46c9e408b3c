package handler

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/utils"
)

// registerClockValidation 注册 hhmm 标签，与日程计算使用同一个时间解析函数，避免两边规则不一致
func registerClockValidation(validate *validator.Validate, trans ut.Translator) error {
	if err := validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseClock(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation("hhmm", trans,
		func(tr ut.Translator) error {
			return tr.Add("hhmm", "{0}必须是 HH:MM 格式的时间", true)
		},
		func(tr ut.Translator, fe validator.FieldError) string {
			msg, _ := tr.T("hhmm", fe.Field())
			return msg
		},
	)
}
