package filters

// daubechiesH holds the extremal phase Daubechies scaling filters indexed by
// order, normalized so that the taps of each filter sum to one.
var daubechiesH = [MaxOrder + 1][]float64{
	nil,
	{ // db1
		5.00000000000000000000e-1,
		5.00000000000000000000e-1,
	},
	{ // db2
		3.41506350946109661691e-1,
		5.91506350946109661691e-1,
		1.58493649053890338309e-1,
		-9.15063509461096616909e-2,
	},
	{ // db3
		2.35233603892081840377e-1,
		5.70558457915721812880e-1,
		3.25182500263116264253e-1,
		-9.54672077841636807533e-2,
		-6.04161041551981046301e-2,
		2.49087498684418678733e-2,
	},
	{ // db4
		1.62901714025649174137e-1,
		5.05472857545914431441e-1,
		4.46100069123379811586e-1,
		-1.97875131178223215477e-2,
		-1.32253583684519868026e-1,
		2.18081502370886263289e-2,
		2.32518005354908823027e-2,
		-7.49349466518073622256e-3,
	},
	{ // db5
		1.13209491291779178824e-1,
		4.26971771352514166224e-1,
		5.12163472129598536617e-1,
		9.78834806739046740286e-2,
		-1.71328357691467443224e-1,
		-2.28005659417736487424e-2,
		5.48513293210668235221e-2,
		-4.41340005417912727215e-3,
		-8.89593505097709573975e-3,
		2.35871396953393576240e-3,
	},
	{ // db6
		7.88712160014507083607e-2,
		3.49751907037617831056e-1,
		5.31131879940868984548e-1,
		2.22915661465017756274e-1,
		-1.59993299446061394942e-1,
		-9.17590320301475761332e-2,
		6.89440464873722988053e-2,
		1.94616048541646641434e-2,
		-2.23318741650945346284e-2,
		3.91625576148577887706e-4,
		3.37803118146393785689e-3,
		-7.61766902801253227606e-4,
	},
	{ // db7
		5.50497153728118488913e-2,
		2.80395641812762562712e-1,
		5.15574245818098668122e-1,
		3.32186241105539674237e-1,
		-1.01756911231346242487e-1,
		-1.58417505640332839377e-1,
		5.04232325046940869026e-2,
		5.70017225798715763166e-2,
		-2.68912262948454387632e-2,
		-1.17199707821032885719e-2,
		8.87489618968076391986e-3,
		3.03757497701069354265e-4,
		-1.27395235909368658542e-3,
		2.50113426561245328630e-4,
	},
	{ // db8
		3.84778110540762365861e-2,
		2.21233623576124919862e-1,
		4.77743075213873695581e-1,
		4.13908266211195892908e-1,
		-1.11928676668802177411e-2,
		-2.00829316390489050420e-1,
		3.34097046220118780474e-4,
		9.10381784236577454313e-2,
		-1.22819505228484092560e-2,
		-3.11751033251394281356e-2,
		9.88607964835075897813e-3,
		6.18442240981592236745e-3,
		-3.44385962844180908391e-3,
		-2.77002274479389322377e-4,
		4.77614855649626154902e-4,
		-8.30686306866126906162e-5,
	},
	{ // db9
		2.69251747946628001469e-2,
		1.72417151906977942011e-1,
		4.27674532179707566295e-1,
		4.64772857183147340123e-1,
		9.41847747531837790833e-2,
		-2.07375880900938492344e-1,
		-6.84767745123830986038e-2,
		1.05034171139506192155e-1,
		2.17263377306145436162e-2,
		-4.78236320600970260942e-2,
		1.77446406616518914313e-4,
		1.58120829262558630125e-2,
		-3.33981011313857748224e-3,
		-3.02748028754506593317e-3,
		1.30648364024724569789e-3,
		1.62907335676092213045e-4,
		-1.78164879510777667510e-4,
		2.78227570171548578273e-5,
	},
	{ // db10
		1.88585787961206888853e-2,
		1.33061091396920894917e-1,
		3.72787535743233384889e-1,
		4.86814055366819945683e-1,
		1.98818870884508689511e-1,
		-1.76668100897056300249e-1,
		-1.38554939360483152856e-1,
		9.00637242666966663428e-2,
		6.58014935505350073237e-2,
		-5.04832855983897170697e-2,
		-2.08296240438008069810e-2,
		2.34849070486985608460e-2,
		2.55021848390723873267e-3,
		-7.58950116792824939384e-3,
		9.86662682481602594134e-4,
		1.40884329509733810573e-3,
		-4.84973919928205481485e-4,
		-8.23545030453889775516e-5,
		6.61771834255533831844e-5,
		-9.37920781375020416856e-6,
	},
	{ // db11
		1.32188647166566990176e-2,
		1.01870767600952361526e-1,
		3.18127174230389441828e-1,
		4.84853768313179258544e-1,
		2.91302798890302135964e-1,
		-1.14745926177647011784e-1,
		-1.93910491395499654353e-1,
		4.66998690677665145823e-2,
		1.05933089918179829373e-1,
		-3.28662914522537556165e-2,
		-4.69793158987521116143e-2,
		2.21572547829797392202e-2,
		1.47367447991443151660e-2,
		-1.08645690544919852102e-2,
		-2.36234396409576135116e-3,
		3.48491754511885782750e-3,
		-2.18208103093930591441e-4,
		-6.31462796303369752713e-4,
		1.76177438953942494215e-4,
		3.84942388814444573538e-5,
		-2.44906321849059328502e-5,
		3.17793181794620596964e-6,
	},
	{ // db12
		9.27176651822425906360e-3,
		7.74750545011953402308e-2,
		2.66830375025536323701e-1,
		4.64709673322964647864e-1,
		3.64786827218755981392e-1,
		-3.16528470980432488137e-2,
		-2.23571928713671858572e-1,
		-1.68144740573463194274e-2,
		1.29031859672859318735e-1,
		3.78978806097618173366e-3,
		-6.81878060444357053922e-2,
		7.67149357386800969709e-3,
		2.93776545498322574291e-2,
		-8.63988961415770999568e-3,
		-9.07983457374950698659e-3,
		4.74574646104609670706e-3,
		1.59000542833290580979e-3,
		-1.54114178835230834879e-3,
		4.62810454280092151757e-6,
		2.74819216249601879218e-4,
		-6.25818557839960409532e-5,
		-1.71413613912404461618e-5,
		9.03466955721994137388e-6,
		-1.08121700905108007298e-6,
	},
	{ // db13
		6.50689102678445332840e-3,
		5.85917474400818175535e-2,
		2.20614715104908466079e-1,
		4.32081736038096413353e-1,
		4.16407808621947875502e-1,
		6.15081968480647575670e-2,
		-2.22719478932767509506e-1,
		-8.80890510919521715952e-2,
		1.26908752825261631812e-1,
		5.15826856690347021167e-2,
		-7.48172843218854438519e-2,
		-1.87301318415411824386e-2,
		3.96966049498773100446e-2,
		1.68289451988100733434e-3,
		-1.68513591895793814717e-2,
		2.77464560742361888410e-3,
		5.13047646738902566580e-3,
		-1.95296616306117715770e-3,
		-9.30321944929276830941e-4,
		6.59254129413658482959e-4,
		3.48260874005789099787e-5,
		-1.16763827578780837284e-4,
		2.16930019592273870740e-5,
		7.38355991572181474711e-6,
		-3.32369636695706759699e-6,
		3.69112221614922207087e-7,
	},
	{ // db14
		4.56872542591511294135e-3,
		4.40985438894737101549e-2,
		1.80206352543370147492e-1,
		3.91953261295805629420e-1,
		4.46317208304595539541e-1,
		1.54623526161048969952e-1,
		-1.92112817687058569110e-1,
		-1.54172987584285990908e-1,
		9.78601942075672423373e-2,
		9.89871829185082255685e-2,
		-6.13403900770143323066e-2,
		-5.05927516237255725029e-2,
		3.90585465511491776972e-2,
		1.90787367804882744745e-2,
		-2.13442667667100161328e-2,
		-3.97043959961374474291e-3,
		9.04353741656404079075e-3,
		-5.27656507561846523108e-4,
		-2.72210574869779340204e-3,
		7.50728966157848642359e-4,
		5.00646559383468213508e-4,
		-2.73531493124587385573e-4,
		-2.95409737835274742594e-5,
		4.86171568115935488006e-5,
		-7.30951071295385561466e-6,
		-3.10399010345745134081e-6,
		1.21975543246326756502e-6,
		-1.26369879052247365905e-7,
	},
	{ // db15
		3.20923054504094117480e-3,
		3.30525715043556633021e-2,
		1.45680871311459619384e-1,
		3.48343266402768718200e-1,
		4.56658850926114369920e-1,
		2.39710991659473665520e-1,
		-1.36615957270939176202e-1,
		-2.04270842999279062288e-1,
		4.61620186552488996141e-2,
		1.34454030894775741891e-1,
		-2.80482224263426287019e-2,
		-7.85743674037231343738e-2,
		2.39547581955449275564e-2,
		3.87356987954380225755e-2,
		-1.82200256128233631242e-2,
		-1.47149275918222420850e-2,
		1.06659407243447808827e-2,
		3.60695194567919668805e-3,
		-4.58752110213758760836e-3,
		-1.70947654013407458647e-4,
		1.37413756457069503061e-3,
		-2.64091905264224590803e-4,
		-2.54251022567699725179e-4,
		1.10235465186036337618e-4,
		1.82381924778305566106e-5,
		-1.98932445668525858721e-5,
		2.37799104125007897466e-6,
		1.28076158801730631161e-6,
		-4.46671032858837547562e-7,
		4.33694038615623249414e-8,
	},
	{ // db16
		2.25511974301542161225e-3,
		2.46834815139921997653e-2,
		1.16718074186666711031e-1,
		3.04277044355256688613e-1,
		4.50678984448632236307e-1,
		3.11332226334709967844e-1,
		-6.34636039353805082869e-2,
		-2.31268684751612149667e-1,
		-1.97411542894417171200e-2,
		1.49334371813490199001e-1,
		1.93324858989742785361e-2,
		-9.36126686139670659480e-2,
		-4.41215027099897119004e-3,
		5.36865421633158774312e-2,
		-5.36621523847020588975e-3,
		-2.60840361549285705346e-2,
		7.28154496247099420655e-3,
		9.89508885514203714743e-3,
		-4.94268669838270489966e-3,
		-2.57689483290145624323e-3,
		2.21184654456102566861e-3,
		2.88426721184351260397e-4,
		-6.65402860216177927108e-4,
		8.07809535124394591621e-5,
		1.23593246363752628259e-4,
		-4.31589456062697335626e-5,
		-9.86107710974544763027e-6,
		8.01619286004659084246e-6,
		-7.37916372800484822676e-7,
		-5.20689164732288150609e-7,
		1.63255688411256161893e-7,
		-1.49152835626975924314e-8,
	},
	{ // db17
		1.58519693254496149898e-3,
		1.83744480996220482990e-2,
		9.27829479216997836249e-2,
		2.61877508465681047293e-1,
		4.32039850232627658242e-1,
		3.66504591560547338925e-1,
		1.93146008000787741535e-2,
		-2.32157827572399422431e-1,
		-8.95195432883873054688e-2,
		1.39519655881334915360e-1,
		7.15135902160079169990e-2,
		-8.96722356172893524911e-2,
		-4.03697299691255406842e-2,
		5.73505931579827847292e-2,
		1.57772042156511289181e-2,
		-3.31791743748606136266e-2,
		-2.31291484033749968127e-3,
		1.60751368738102345691e-2,
		-2.15171885089858968479e-3,
		-6.08318414503597367301e-3,
		2.09869058711733935824e-3,
		1.62719783162880329520e-3,
		-1.01600305854223622239e-3,
		-2.32024729602522856856e-4,
		3.10748984072254831382e-4,
		-1.81090821414368885412e-5,
		-5.80167198275589493149e-5,
		1.63955532712030738516e-5,
		4.94310136111712993857e-6,
		-3.18618248128088541535e-6,
		2.13302268501278678365e-7,
		2.09141038667013002008e-7,
		-5.95663107053437422688e-8,
		5.13889356029546573335e-9,
	},
	{ // db18
		1.11461964471310971688e-3,
		1.36390515812757524976e-2,
		7.32481066357466386002e-2,
		2.22511613316018898303e-1,
		4.04342613436024308463e-1,
		4.04324827665455342295e-1,
		1.04102460821322564063e-1,
		-2.07644763527651356992e-1,
		-1.53075136432634066075e-1,
		1.05736488140062136632e-1,
		1.18144329264449763651e-1,
		-6.52885014027941163155e-2,
		-7.54852375200636897985e-2,
		4.58821905957560210981e-2,
		4.03413241510731148101e-2,
		-3.14847368796732874726e-2,
		-1.67819140102396727024e-2,
		1.88590370196395959627e-2,
		4.42802142541865583907e-3,
		-9.22879068187636688987e-3,
		8.38841013934645910482e-5,
		3.49547178516068771401e-3,
		-7.91063455165306365794e-4,
		-9.47944733387044935546e-4,
		4.44392346167689437334e-4,
		1.51024970763216326423e-4,
		-1.40465738412527596063e-4,
		-1.08605741339194004379e-7,
		2.64545467550326896090e-5,
		-6.02497583402386191450e-6,
		-2.35652843923626069409e-6,
		1.25066894469577789618e-6,
		-5.43880563341393320111e-8,
		-8.31627413510800165854e-8,
		2.16999464910771414412e-8,
		-1.77337745986554180511e-9,
	},
	{ // db19
		7.83947907642271279703e-4,
		1.00982615573282035785e-2,
		5.74723050520547321656e-2,
		1.86950852951264758886e-1,
		3.70832518806165386381e-1,
		4.25469366958876173369e-1,
		1.84480590196892790429e-1,
		-1.61284971580061839367e-1,
		-2.02118434839629161005e-1,
		5.27871261415669064018e-2,
		1.50153943475092198232e-1,
		-2.37011882746038060450e-2,
		-1.00964733218325007769e-1,
		1.95050813820094163826e-2,
		6.14523561844364936580e-2,
		-1.87392038622887543201e-2,
		-3.22965551260787748304e-2,
		1.52903125701182515005e-2,
		1.37005827158546992278e-2,
		-9.89128449246532707348e-3,
		-4.14854052959815612010e-3,
		4.97856020790144776542e-3,
		5.43732841853969100042e-4,
		-1.90038610306620532755e-3,
		2.41695216728815734469e-4,
		5.20290951863546920892e-4,
		-1.84325863231862387411e-4,
		-8.81060647764363886135e-5,
		6.15979842012131168719e-5,
		3.61045221381270009921e-6,
		-1.17663814998579159901e-5,
		2.12907328596399052081e-6,
		1.08323913548146408301e-6,
		-4.85270106323490621558e-7,
		1.02324594905566076362e-8,
		3.27881014519594629110e-8,
		-7.89415472131711046546e-9,
		6.12838758557397308074e-10,
	},
	{ // db20
		5.51510489234779724656e-4,
		7.45954847671534189515e-3,
		4.48473852511033815040e-2,
		1.55522559960694499343e-1,
		3.34246678074351485892e-1,
		4.31683909122018935230e-1,
		2.55620726853106104889e-1,
		-9.84378114560587225592e-2,
		-2.31073162589161137270e-1,
		-1.18278375728545728221e-2,
		1.61426150118965572200e-1,
		2.81783795022452120441e-2,
		-1.09925936819898162714e-1,
		-1.74774362205507113474e-2,
		7.23311682874783215549e-2,
		3.98259994611870875673e-3,
		-4.36446808791081621594e-2,
		4.15402734644541575663e-3,
		2.28355181918767110399e-2,
		-6.21499125574272981190e-3,
		-9.76551668333417817602e-3,
		4.75290824603630148283e-3,
		3.12579549840264658630e-3,
		-2.53249887775065756665e-3,
		-5.88003251381049772084e-4,
		9.84688350029946874386e-4,
		-3.78285146341025677451e-5,
		-2.72310179272358036148e-4,
		7.17945948462886379899e-5,
		4.79013991140791511798e-5,
		-2.62378065245551173243e-5,
		-3.09440100039819241821e-6,
		5.12033576846949243118e-6,
		-7.15587827004521312250e-7,
		-4.84161641436314678884e-7,
		1.86246568152704814734e-7,
		1.42434076234597600902e-10,
		-1.28328796766333625804e-8,
		2.86811494633492510676e-9,
		-2.12049761747948249723e-10,
	},
}
