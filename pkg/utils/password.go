package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt 自带盐，同一明文每次产出不同密文。
const hashCost = bcrypt.DefaultCost // 10

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), hashCost)
	return string(b)
}

// CheckPassword 恒定时间比较；hashed 格式不合法时直接返回 false，不 panic。
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
