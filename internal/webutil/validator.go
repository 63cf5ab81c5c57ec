package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/zh_Hant_TW" // 繁體中文ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_tw_translations "github.com/go-playground/validator/v10/translations/zh_tw"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"level":           "關卡",
	"user_sentence":   "造句",
	"sentence_prompt": "造句提示",
	"correct_words":   "選擇的單字",
	"feedback_count":  "回饋次數",
}

// translatedField は jsonタグ名を表示用の名前に変換します。
// dive 先の要素 (correct_words[0]) は親フィールドの名前を使います。
func translatedField(fe validator.FieldError) string {
	fieldName := fe.Field()
	if i := strings.IndexByte(fieldName, '['); i > 0 {
		fieldName = fieldName[:i]
	}
	if name, ok := fieldNameTranslations[fieldName]; ok {
		return name
	}
	return fieldName
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	zhTW := zh_Hant_TW.New()
	uni := ut.New(zhTW, zhTW)
	var found bool
	Trans, found = uni.GetTranslator("zh_Hant_TW")
	if !found {
		log.Fatal("translator not found")
	}

	if err := zh_tw_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// max は文字列と配列で文言を変える
	mustRegister("max", func(ut ut.Translator) error {
		if err := ut.Add("max-string", "{0}不能超過{1}個字。", true); err != nil {
			return err
		}
		return ut.Add("max-items", "{0}最多只能有{1}個。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		key := "max-string"
		if fe.Kind() == reflect.Slice {
			key = "max-items"
		}
		t, _ := ut.T(key, translatedField(fe), fe.Param())
		return t
	})

	mustRegister("gte", func(ut ut.Translator) error {
		return ut.Add("gte", "{0}必須大於或等於{1}。", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("gte", translatedField(fe), fe.Param())
		return t
	})
}

func mustRegister(tag string, register validator.RegisterTranslationsFunc, translate validator.TranslationFunc) {
	if err := Validator.RegisterTranslation(tag, Trans, register, translate); err != nil {
		log.Fatal(err)
	}
}
