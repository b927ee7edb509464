package global

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError mô tả một lỗi validation trên một field cụ thể.
// Field lấy theo json tag để client đối chiếu trực tiếp với payload gửi lên.
type FieldError struct {
	Field  string `json:"field"`  // Tên field trong payload
	Reason string `json:"reason"` // Lý do không hợp lệ
}

// InitValidator khởi tạo validator dùng chung và cấu hình lấy tên field theo json tag
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Lấy tên field theo json tag thay vì tên field trong struct
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct xác thực một struct theo các validate tag.
// Trả về nil nếu hợp lệ, ngược lại trả về danh sách lỗi theo từng field.
func ValidateStruct(s interface{}) []FieldError {
	if Validate == nil {
		InitValidator()
	}

	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Lỗi không phải từ validation (ví dụ truyền vào non-struct)
		return []FieldError{{Field: "", Reason: err.Error()}}
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field:  fe.Field(),
			Reason: reasonForTag(fe),
		})
	}
	return fields
}

// reasonForTag chuyển một validator tag thành thông báo lỗi đọc được
func reasonForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "trường bắt buộc"
	case "oneof":
		return fmt.Sprintf("giá trị phải thuộc: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array || fe.Kind() == reflect.Map {
			return fmt.Sprintf("cần tối thiểu %s phần tử", fe.Param())
		}
		return fmt.Sprintf("giá trị nhỏ nhất là %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array || fe.Kind() == reflect.Map {
			return fmt.Sprintf("tối đa %s phần tử", fe.Param())
		}
		return fmt.Sprintf("giá trị lớn nhất là %s", fe.Param())
	default:
		return fmt.Sprintf("không thỏa ràng buộc %s", fe.Tag())
	}
}
