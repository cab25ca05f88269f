package messaging

import "github.com/KirkDiggler/taixiu/internal/models"

// DefaultPools returns a fresh copy of the built-in tables
func DefaultPools() Pools {
	return Pools{
		models.MessageGreeting: {
			"Vào sòng làm tí không em zai?",
		},
		models.MessageRolling: {
			"Đang lắc... Cầu trời khấn phật đi!",
		},
		models.MessageWin: {
			"Chó ngáp phải ruồi!",
			"Đỏ thôi, đen quên đi cưng.",
			"Hack game à? Trả tiền đây!",
			"Nay ăn cứt gà hay sao đỏ thế?",
			"Thánh độ rồi, nạp thêm đi!",
			"Rùa vãi cả chưởng.",
			"Hay không bằng hên.",
		},
		models.MessageLose: {
			"Ra đê mà ở!",
			"Ngu thì chết, bệnh tật gì.",
			"Còn đúng cái nịt!",
			"Về méc mẹ đi.",
			"Bán nhà chưa em?",
			"Thôi bỏ đi làm người.",
			"Đừng khóc, lau nước mắt đi em.",
			"Gà thế này thì bao giờ mới giàu?",
		},
		models.MessageTriple: {
			"Bão rồi! Nhà cái xin nhẹ cái nịt hihi.",
			"3 con giống nhau? Đen hơn mõm chó.",
			"Vào hang mà trốn đi.",
			"Cười ỉa, bão về làng!",
		},
		models.MessagePoor: {
			"Nghèo mà ham, cầm tạm 500k gỡ đi em.",
			"Khổ thân, tiền không có mà đòi đú.",
			"Bố thí cho ít lá mít này.",
			"Lần sau nạp nhiều vào nhé con.",
		},
		models.MessageInsufficientFunds: {
			"Tiền đâu mà đòi chơi? Nạp lá mít vào!",
		},
		models.MessageNoSideSelected: {
			"Chọn Tài hoặc Xỉu đi má, ngắm hoài!",
		},
		models.MessageQuickBetRejected: {
			"Làm gì còn tiền mà chọn mức đó?",
		},
		models.MessageLoanOffer: {
			"Trông mặt hãm tài thế kia thì làm sao mà đỏ được? Thôi cầm tạm ít tiền lẻ mà gỡ, lãi 0% nhưng lãi tình cảm thì vô cực.",
		},
	}
}
